package interview

// ValidationError signals missing or malformed caller input. Maps to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError covers both unresolvable entities and ownership mismatches,
// which are deliberately indistinguishable to callers. Maps to 404.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// GenerationError signals a question/summary generator failure. The
// interview row already persisted stays as-is; callers may retry.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string { return "generation failed: " + e.Err.Error() }
func (e *GenerationError) Unwrap() error { return e.Err }

// EvaluationError signals a per-response scoring failure. The raw response
// is already persisted when this is returned.
type EvaluationError struct {
	Err error
}

func (e *EvaluationError) Error() string { return "evaluation failed: " + e.Err.Error() }
func (e *EvaluationError) Unwrap() error { return e.Err }

// SessionProviderError signals a room allocation failure. Non-fatal: the
// interview degrades to voice-disabled.
type SessionProviderError struct {
	Err error
}

func (e *SessionProviderError) Error() string { return "session provider failed: " + e.Err.Error() }
func (e *SessionProviderError) Unwrap() error { return e.Err }
