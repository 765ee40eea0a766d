package db

import "time"

// ConstraintKind distinguishes disqualifying rules from penalized ones
type ConstraintKind string

const (
	// KindHard marks a constraint whose violation makes a candidate ineligible
	KindHard ConstraintKind = "hard"

	// KindSoft marks a constraint whose violation only lowers a candidate's score
	KindSoft ConstraintKind = "soft"
)

// ConstraintDefinition represents a configurable assignment rule
type ConstraintDefinition struct {
	Code          string
	Name          string
	Category      string
	Kind          ConstraintKind
	Enabled       bool
	Weight        float64
	PenaltyPoints int
}

// Match represents a scheduled fixture that may need a jury team
type Match struct {
	ID          string
	StartTime   time.Time
	HomeTeamID  string
	AwayTeamID  string
	Competition string
	Location    string
	Locked      bool
}

// Team represents a duty-capable unit
type Team struct {
	ID string

	Name string

	// CapacityFactor scales how much duty load the team can carry (>= 0)
	CapacityFactor float64

	// DedicatedTo restricts eligibility to matches involving the referenced
	// team. Empty means no dedication.
	DedicatedTo string

	// Excluded removes the team from every candidate pool
	Excluded bool
}

// Assignment links a jury team to a match
type Assignment struct {
	ID        string
	MatchID   string
	TeamID    string
	CreatedAt time.Time
	Locked    bool
}

// SolverRun records metadata about an applied external solver solution
type SolverRun struct {
	ID                   string
	PeriodStart          time.Time
	PeriodEnd            time.Time
	OptimizationScore    float64
	ConstraintsSatisfied int
	TotalConstraints     int
	SolverTimeSeconds    float64
	ImportedAt           time.Time
}
