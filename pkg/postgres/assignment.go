package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/juryplan/pkg/db"
)

func scanAssignment(row pgx.Row) (db.Assignment, error) {
	var a db.Assignment
	err := row.Scan(&a.ID, &a.MatchID, &a.TeamID, &a.CreatedAt, &a.Locked)
	if err != nil {
		return db.Assignment{}, err
	}
	return a, nil
}

func collectAssignments(rows pgx.Rows) ([]db.Assignment, error) {
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return assignments, nil
}

// GetAssignments retrieves all assignment records
func (d *DB) GetAssignments(ctx context.Context) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, match_id, team_id, created_at, locked
		FROM assignment
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	return collectAssignments(rows)
}

// GetAssignmentsForTeam retrieves a team's assignments whose match starts
// in [from, to)
func (d *DB) GetAssignmentsForTeam(ctx context.Context, teamID string, from, to time.Time) ([]db.Assignment, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.match_id, a.team_id, a.created_at, a.locked
		FROM assignment a
		JOIN match m ON m.id = a.match_id
		WHERE a.team_id = $1 AND m.start_time >= $2 AND m.start_time < $3
		ORDER BY m.start_time, a.id
	`, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for team %s: %w", teamID, err)
	}
	return collectAssignments(rows)
}

// GetAssignmentsForDay retrieves all assignments whose match starts on the
// given calendar day
func (d *DB) GetAssignmentsForDay(ctx context.Context, day time.Time) ([]db.Assignment, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	rows, err := d.pool.Query(ctx, `
		SELECT a.id, a.match_id, a.team_id, a.created_at, a.locked
		FROM assignment a
		JOIN match m ON m.id = a.match_id
		WHERE m.start_time >= $1 AND m.start_time < $2
		ORDER BY m.start_time, a.id
	`, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments for day: %w", err)
	}
	return collectAssignments(rows)
}

// InsertAssignments inserts a batch of assignments in one transaction.
// Either every row is committed or none are.
func (d *DB) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, match_id, team_id, created_at, locked)
			VALUES ($1, $2, $3, $4, $5)
		`, a.ID, a.MatchID, a.TeamID, a.CreatedAt, a.Locked)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteAssignment deletes an assignment record by id
func (d *DB) DeleteAssignment(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM assignment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
