package models

// JobRole is the closed set of positions an interview can target.
type JobRole string

const (
	RoleFrontendDeveloper  JobRole = "frontend_developer"
	RoleBackendDeveloper   JobRole = "backend_developer"
	RoleFullstackDeveloper JobRole = "fullstack_developer"
	RoleMobileDeveloper    JobRole = "mobile_developer"
	RoleDataScientist      JobRole = "data_scientist"
	RoleProductManager     JobRole = "product_manager"
	RoleUXDesigner         JobRole = "ux_designer"
	RoleDevOpsEngineer     JobRole = "devops_engineer"
	RoleQAEngineer         JobRole = "qa_engineer"
	RoleSoftwareArchitect  JobRole = "software_architect"
)

var jobRoles = map[JobRole]bool{
	RoleFrontendDeveloper:  true,
	RoleBackendDeveloper:   true,
	RoleFullstackDeveloper: true,
	RoleMobileDeveloper:    true,
	RoleDataScientist:      true,
	RoleProductManager:     true,
	RoleUXDesigner:         true,
	RoleDevOpsEngineer:     true,
	RoleQAEngineer:         true,
	RoleSoftwareArchitect:  true,
}

func (r JobRole) Valid() bool { return jobRoles[r] }

// ExperienceLevel is the seniority bracket of the candidate.
type ExperienceLevel string

const (
	LevelEntry     ExperienceLevel = "entry"
	LevelJunior    ExperienceLevel = "junior"
	LevelMid       ExperienceLevel = "mid"
	LevelSenior    ExperienceLevel = "senior"
	LevelLead      ExperienceLevel = "lead"
	LevelPrincipal ExperienceLevel = "principal"
)

var experienceLevels = map[ExperienceLevel]bool{
	LevelEntry:     true,
	LevelJunior:    true,
	LevelMid:       true,
	LevelSenior:    true,
	LevelLead:      true,
	LevelPrincipal: true,
}

func (l ExperienceLevel) Valid() bool { return experienceLevels[l] }

// InterviewStatus tracks the interview lifecycle. Completed and cancelled
// are terminal.
type InterviewStatus string

const (
	StatusPending    InterviewStatus = "pending"
	StatusInProgress InterviewStatus = "in_progress"
	StatusCompleted  InterviewStatus = "completed"
	StatusCancelled  InterviewStatus = "cancelled"
)

var interviewStatuses = map[InterviewStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusCompleted:  true,
	StatusCancelled:  true,
}

func (s InterviewStatus) Valid() bool { return interviewStatuses[s] }

// QuestionType classifies a generated question.
type QuestionType string

const (
	QuestionTechnical   QuestionType = "technical"
	QuestionBehavioral  QuestionType = "behavioral"
	QuestionSituational QuestionType = "situational"
)

var questionTypes = map[QuestionType]bool{
	QuestionTechnical:   true,
	QuestionBehavioral:  true,
	QuestionSituational: true,
}

func (t QuestionType) Valid() bool { return questionTypes[t] }
