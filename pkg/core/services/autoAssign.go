package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// AutoAssignStore defines the database operations needed for a batch run
type AutoAssignStore interface {
	SnapshotStore
	InsertAssignments(ctx context.Context, assignments []db.Assignment) error
}

// AutoAssignOptions configures one batch invocation
type AutoAssignOptions struct {
	// From skips matches starting before this time (zero = all)
	From time.Time

	// MaxAssignments bounds how many matches are assigned (0 = unbounded)
	MaxAssignments int

	// DryRun computes the full decision trail without persisting
	DryRun bool

	// StaticTeamID is the placeholder team excluded from fairness
	// aggregates
	StaticTeamID string
}

// AutoAssignResult summarizes a batch run
type AutoAssignResult struct {
	Decisions []assigner.Decision

	// Computed is how many assignment decisions the engine produced;
	// Committed is how many were persisted. They differ on dry runs and
	// when the batch write fails.
	Computed  int
	Committed int

	Unassignable int
	DryRun       bool

	// UncoveredCodes are enabled constraint codes with no rule
	// implementation, reported as gaps in rule coverage
	UncoveredCodes []string
}

// AutoAssign assigns a jury team to every assignable match in
// chronological order. The whole batch is persisted in one transaction:
// on a storage failure nothing is committed and the result still reports
// what was computed.
func AutoAssign(
	ctx context.Context,
	database AutoAssignStore,
	logger *zap.Logger,
	opts AutoAssignOptions,
) (*AutoAssignResult, error) {
	logger.Debug("Starting auto-assign",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("max_assignments", opts.MaxAssignments))

	engine, working, err := loadEngine(ctx, database, opts.StaticTeamID)
	if err != nil {
		return nil, err
	}

	outcome := engine.AutoAssign(working, assigner.Options{
		From:           opts.From,
		MaxAssignments: opts.MaxAssignments,
		Now:            time.Now(),
	})

	result := &AutoAssignResult{
		Decisions:      outcome.Decisions,
		Computed:       outcome.AssignedCount,
		Unassignable:   outcome.UnassignableCount,
		DryRun:         opts.DryRun,
		UncoveredCodes: engine.Evaluator().UncoveredCodes(),
	}

	for _, code := range result.UncoveredCodes {
		logger.Warn("Constraint has no rule implementation", zap.String("code", code))
	}

	if opts.DryRun {
		logger.Info("Dry run complete",
			zap.Int("computed", result.Computed),
			zap.Int("unassignable", result.Unassignable))
		return result, nil
	}

	if len(outcome.Assignments) > 0 {
		if err := database.InsertAssignments(ctx, outcome.Assignments); err != nil {
			logger.Error("Batch commit failed, rolled back",
				zap.Int("computed", result.Computed),
				zap.Error(err))
			return result, fmt.Errorf("computed %d assignments but committed none: %w", result.Computed, err)
		}
	}
	result.Committed = result.Computed

	logger.Info("Auto-assign complete",
		zap.Int("assigned", result.Committed),
		zap.Int("unassignable", result.Unassignable))
	return result, nil
}
