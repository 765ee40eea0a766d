package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/bridge"
	"github.com/jakechorley/juryplan/pkg/db"
)

// SolverExportStore defines the reads needed to build an export document
type SolverExportStore interface {
	GetMatches(ctx context.Context) ([]db.Match, error)
	GetEligibleTeams(ctx context.Context) ([]db.Team, error)
	GetConstraints(ctx context.Context) ([]db.ConstraintDefinition, error)
}

// SolverImportStore defines the writes needed to apply a solution
type SolverImportStore interface {
	ApplySolverSolution(ctx context.Context, periodStart, periodEnd time.Time, assignments []db.Assignment, run db.SolverRun) error
}

// ImportSolutionResult reports an applied solver solution
type ImportSolutionResult struct {
	Applied int
	Run     db.SolverRun
}

// ExportForSolver serializes teams, matches and enabled constraints into
// the solver-neutral document for the given period.
func ExportForSolver(
	ctx context.Context,
	database SolverExportStore,
	logger *zap.Logger,
	period bridge.Period,
	multipliers map[string]float64,
) ([]byte, error) {
	teams, err := database.GetEligibleTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	matches, err := database.GetMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	defs, err := database.GetConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch constraints: %w", err)
	}

	doc := bridge.BuildExport(teams, matches, sortEnabled(defs), multipliers, period, time.Now())
	data, err := doc.Marshal()
	if err != nil {
		return nil, err
	}

	logger.Info("Solver export built",
		zap.Int("teams", len(doc.Teams)),
		zap.Int("matches", len(doc.Matches)),
		zap.Int("constraints", len(doc.Constraints)))
	return data, nil
}

// ImportSolution parses a solver solution document and applies it:
// assignments in the stated period are cleared, the solution's are
// inserted and the run metadata is recorded, all in one transaction.
// Malformed documents are rejected before any mutation.
func ImportSolution(
	ctx context.Context,
	database SolverImportStore,
	logger *zap.Logger,
	data []byte,
) (*ImportSolutionResult, error) {
	doc, err := bridge.ParseSolution(data)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	assignments := make([]db.Assignment, 0, len(doc.Assignments))
	for _, sa := range doc.Assignments {
		assignments = append(assignments, db.Assignment{
			ID:        uuid.NewString(),
			MatchID:   sa.MatchID,
			TeamID:    sa.TeamID,
			CreatedAt: now,
		})
	}

	run := db.SolverRun{
		ID:                   uuid.NewString(),
		PeriodStart:          doc.Period.Start,
		PeriodEnd:            doc.Period.End,
		OptimizationScore:    doc.OptimizationScore,
		ConstraintsSatisfied: doc.ConstraintsSatisfied,
		TotalConstraints:     doc.TotalConstraints,
		SolverTimeSeconds:    doc.SolverTimeSeconds,
		ImportedAt:           now,
	}

	if err := database.ApplySolverSolution(ctx, doc.Period.Start, doc.Period.End, assignments, run); err != nil {
		return nil, fmt.Errorf("failed to apply solver solution: %w", err)
	}

	logger.Info("Solver solution applied",
		zap.Int("assignments", len(assignments)),
		zap.Float64("score", doc.OptimizationScore),
		zap.Float64("satisfaction", doc.SatisfactionRate()))
	return &ImportSolutionResult{Applied: len(assignments), Run: run}, nil
}
