package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/juryplan/pkg/db"
)

const matchColumns = `id, start_time, home_team_id, away_team_id, competition, location, locked`

func scanMatch(row pgx.Row) (db.Match, error) {
	var m db.Match
	var homeTeamID, awayTeamID *string
	err := row.Scan(&m.ID, &m.StartTime, &homeTeamID, &awayTeamID, &m.Competition, &m.Location, &m.Locked)
	if err != nil {
		return db.Match{}, err
	}
	if homeTeamID != nil {
		m.HomeTeamID = *homeTeamID
	}
	if awayTeamID != nil {
		m.AwayTeamID = *awayTeamID
	}
	return m, nil
}

// GetMatches retrieves all matches ordered by start time
func (d *DB) GetMatches(ctx context.Context) ([]db.Match, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+matchColumns+`
		FROM match
		ORDER BY start_time, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []db.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}
	return matches, nil
}

// GetUnassignedMatches retrieves unlocked matches from the given time that
// hold no assignment, ordered by start time.
func (d *DB) GetUnassignedMatches(ctx context.Context, from time.Time) ([]db.Match, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT `+matchColumns+`
		FROM match m
		WHERE m.start_time >= $1
		  AND NOT m.locked
		  AND NOT EXISTS (SELECT 1 FROM assignment a WHERE a.match_id = m.id)
		ORDER BY m.start_time, m.id
	`, from)
	if err != nil {
		return nil, fmt.Errorf("failed to query unassigned matches: %w", err)
	}
	defer rows.Close()

	var matches []db.Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating matches: %w", err)
	}
	return matches, nil
}

// GetMatch retrieves a single match by id
func (d *DB) GetMatch(ctx context.Context, id string) (db.Match, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT `+matchColumns+`
		FROM match
		WHERE id = $1
	`, id)

	m, err := scanMatch(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Match{}, db.ErrNotFound
	}
	if err != nil {
		return db.Match{}, fmt.Errorf("failed to get match %s: %w", id, err)
	}
	return m, nil
}

// InsertMatches inserts match records in a single transaction
func (d *DB) InsertMatches(ctx context.Context, matches []db.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, m := range matches {
		var homeTeamID, awayTeamID *string
		if m.HomeTeamID != "" {
			homeTeamID = &m.HomeTeamID
		}
		if m.AwayTeamID != "" {
			awayTeamID = &m.AwayTeamID
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO match (id, start_time, home_team_id, away_team_id, competition, location, locked)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, m.ID, m.StartTime, homeTeamID, awayTeamID, m.Competition, m.Location, m.Locked)
		if err != nil {
			return fmt.Errorf("failed to insert match: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// SetMatchLocked updates the lock flag of a match
func (d *DB) SetMatchLocked(ctx context.Context, id string, locked bool) error {
	tag, err := d.pool.Exec(ctx, `UPDATE match SET locked = $2 WHERE id = $1`, id, locked)
	if err != nil {
		return fmt.Errorf("failed to update match %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}
