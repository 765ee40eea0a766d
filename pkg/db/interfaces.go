package db

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = errors.New("record not found")

// MatchStore defines the interface for match database operations.
// List results are ordered by start time ascending.
type MatchStore interface {
	GetMatches(ctx context.Context) ([]Match, error)
	GetUnassignedMatches(ctx context.Context, from time.Time) ([]Match, error)
	GetMatch(ctx context.Context, id string) (Match, error)
	InsertMatches(ctx context.Context, matches []Match) error
	SetMatchLocked(ctx context.Context, id string, locked bool) error
}

// TeamStore defines the interface for team database operations
type TeamStore interface {
	// GetEligibleTeams returns all teams that are not globally excluded
	GetEligibleTeams(ctx context.Context) ([]Team, error)
	GetTeam(ctx context.Context, id string) (Team, error)
	InsertTeams(ctx context.Context, teams []Team) error
}

// AssignmentStore defines the interface for assignment database operations
type AssignmentStore interface {
	GetAssignments(ctx context.Context) ([]Assignment, error)
	GetAssignmentsForTeam(ctx context.Context, teamID string, from, to time.Time) ([]Assignment, error)
	GetAssignmentsForDay(ctx context.Context, day time.Time) ([]Assignment, error)

	// InsertAssignments writes a whole batch in one transaction. Either every
	// assignment is committed or none are.
	InsertAssignments(ctx context.Context, assignments []Assignment) error
	DeleteAssignment(ctx context.Context, id string) error
}

// ConstraintStore defines the interface for constraint catalog persistence
type ConstraintStore interface {
	GetConstraints(ctx context.Context) ([]ConstraintDefinition, error)
	GetConstraint(ctx context.Context, code string) (ConstraintDefinition, error)
	InsertConstraints(ctx context.Context, defs []ConstraintDefinition) error
	UpdateConstraint(ctx context.Context, def ConstraintDefinition) error
	DeleteConstraints(ctx context.Context, codes []string) error
}

// SolverRunStore defines the interface for solver run bookkeeping
type SolverRunStore interface {
	GetSolverRuns(ctx context.Context) ([]SolverRun, error)

	// ApplySolverSolution clears all assignments in [periodStart, periodEnd),
	// inserts the provided ones and records the run, all in one transaction.
	ApplySolverSolution(ctx context.Context, periodStart, periodEnd time.Time, assignments []Assignment, run SolverRun) error
}

// Database defines the interface for all database operations
type Database interface {
	MatchStore
	TeamStore
	AssignmentStore
	ConstraintStore
	SolverRunStore
}
