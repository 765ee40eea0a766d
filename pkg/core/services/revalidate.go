package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
)

// RevalidateResult summarizes a schedule audit
type RevalidateResult struct {
	Audits       []assigner.AssignmentAudit
	ValidCount   int
	InvalidCount int
	WarningCount int
}

// Revalidate re-runs the constraint evaluator against every existing
// assignment and reports which are still valid. Nothing is mutated; the
// audit is used after manual schedule edits.
func Revalidate(
	ctx context.Context,
	database SnapshotStore,
	logger *zap.Logger,
	staticTeamID string,
) (*RevalidateResult, error) {
	engine, working, err := loadEngine(ctx, database, staticTeamID)
	if err != nil {
		return nil, err
	}

	audits := engine.Revalidate(working)

	result := &RevalidateResult{Audits: audits}
	for _, audit := range audits {
		if audit.Valid {
			result.ValidCount++
		} else {
			result.InvalidCount++
		}
		result.WarningCount += len(audit.Warnings)
	}

	logger.Info("Revalidation complete",
		zap.Int("valid", result.ValidCount),
		zap.Int("invalid", result.InvalidCount),
		zap.Int("warnings", result.WarningCount))
	return result, nil
}
