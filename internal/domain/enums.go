package domain

// Role identifies which profile variant a user carries.
type Role string

const (
	RoleCitizen   Role = "citizen"
	RoleVolunteer Role = "volunteer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleCitizen, RoleVolunteer:
		return true
	}
	return false
}

// IssueCategory is the closed set of infrastructure areas an issue can belong to.
type IssueCategory string

const (
	CategoryRoads       IssueCategory = "roads"
	CategoryWater       IssueCategory = "water"
	CategoryElectricity IssueCategory = "electricity"
	CategorySanitation  IssueCategory = "sanitation"
	CategoryHealthcare  IssueCategory = "healthcare"
	CategoryEducation   IssueCategory = "education"
	CategoryOther       IssueCategory = "other"
)

func (c IssueCategory) String() string { return string(c) }

func (c IssueCategory) IsValid() bool {
	switch c {
	case CategoryRoads, CategoryWater, CategoryElectricity, CategorySanitation,
		CategoryHealthcare, CategoryEducation, CategoryOther:
		return true
	}
	return false
}

// IssueStatus is a position in the issue lifecycle.
type IssueStatus string

const (
	StatusReported    IssueStatus = "reported"
	StatusUnderReview IssueStatus = "under-review"
	StatusInProgress  IssueStatus = "in-progress"
	StatusResolved    IssueStatus = "resolved"
	StatusClosed      IssueStatus = "closed"
)

func (s IssueStatus) String() string { return string(s) }

func (s IssueStatus) IsValid() bool {
	switch s {
	case StatusReported, StatusUnderReview, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// Active reports whether a volunteer is currently working the issue.
func (s IssueStatus) Active() bool {
	return s == StatusUnderReview || s == StatusInProgress
}

// Priority ranks how urgently an issue needs attention.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Difficulty grades how hard a proposed solution is to carry out.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Language tags educational content.
type Language string

const (
	LanguageHindi   Language = "hindi"
	LanguageEnglish Language = "english"
)

func (l Language) String() string { return string(l) }

func (l Language) IsValid() bool {
	switch l {
	case LanguageHindi, LanguageEnglish:
		return true
	}
	return false
}
