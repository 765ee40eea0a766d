package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jakechorley/juryplan/pkg/db"
)

// GetSolverRuns retrieves solver run metadata, newest first
func (d *DB) GetSolverRuns(ctx context.Context) ([]db.SolverRun, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, period_start, period_end, optimization_score,
		       constraints_satisfied, total_constraints, solver_time_seconds, imported_at
		FROM solver_run
		ORDER BY imported_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query solver runs: %w", err)
	}
	defer rows.Close()

	var runs []db.SolverRun
	for rows.Next() {
		var r db.SolverRun
		err := rows.Scan(&r.ID, &r.PeriodStart, &r.PeriodEnd, &r.OptimizationScore,
			&r.ConstraintsSatisfied, &r.TotalConstraints, &r.SolverTimeSeconds, &r.ImportedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solver run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating solver runs: %w", err)
	}
	return runs, nil
}

// ApplySolverSolution clears assignments whose match starts in
// [periodStart, periodEnd), inserts the solution's assignments and records
// the run, all in one transaction.
func (d *DB) ApplySolverSolution(ctx context.Context, periodStart, periodEnd time.Time, assignments []db.Assignment, run db.SolverRun) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM assignment a
		USING match m
		WHERE m.id = a.match_id AND m.start_time >= $1 AND m.start_time < $2
	`, periodStart, periodEnd)
	if err != nil {
		return fmt.Errorf("failed to clear assignments in period: %w", err)
	}

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, match_id, team_id, created_at, locked)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, a.MatchID, a.TeamID, a.CreatedAt, a.Locked)
		if err != nil {
			return fmt.Errorf("failed to insert solver assignment: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO solver_run (id, period_start, period_end, optimization_score,
			constraints_satisfied, total_constraints, solver_time_seconds, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, run.ID, run.PeriodStart, run.PeriodEnd, run.OptimizationScore,
		run.ConstraintsSatisfied, run.TotalConstraints, run.SolverTimeSeconds, run.ImportedAt)
	if err != nil {
		return fmt.Errorf("failed to record solver run: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
