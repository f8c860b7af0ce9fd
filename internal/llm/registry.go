package llm

import "fmt"

// ProviderFactory builds a configured Provider. Factories run lazily, so an
// unselected provider never reads its environment.
type ProviderFactory func() (Provider, error)

var providers = make(map[string]ProviderFactory)

// RegisterProvider is called from provider init() functions; importing a
// provider package is what makes it selectable by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewProvider resolves the named provider, typically from AI_PROVIDER.
func NewProvider(name string) (Provider, error) {
	factory, exists := providers[name]
	if !exists {
		return nil, fmt.Errorf("unsupported provider: %s", name)
	}
	return factory()
}
