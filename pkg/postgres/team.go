package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/juryplan/pkg/db"
)

func scanTeam(row pgx.Row) (db.Team, error) {
	var t db.Team
	var dedicatedTo *string
	err := row.Scan(&t.ID, &t.Name, &t.CapacityFactor, &dedicatedTo, &t.Excluded)
	if err != nil {
		return db.Team{}, err
	}
	if dedicatedTo != nil {
		t.DedicatedTo = *dedicatedTo
	}
	return t, nil
}

// GetEligibleTeams retrieves all teams that are not globally excluded,
// ordered by name for stable candidate ordering.
func (d *DB) GetEligibleTeams(ctx context.Context) ([]db.Team, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, name, capacity_factor, dedicated_to, excluded
		FROM team
		WHERE NOT excluded
		ORDER BY name, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	var teams []db.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}
	return teams, nil
}

// GetTeam retrieves a single team by id
func (d *DB) GetTeam(ctx context.Context, id string) (db.Team, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT id, name, capacity_factor, dedicated_to, excluded
		FROM team
		WHERE id = $1
	`, id)

	t, err := scanTeam(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.Team{}, db.ErrNotFound
	}
	if err != nil {
		return db.Team{}, fmt.Errorf("failed to get team %s: %w", id, err)
	}
	return t, nil
}

// InsertTeams inserts team records in a single transaction
func (d *DB) InsertTeams(ctx context.Context, teams []db.Team) error {
	if len(teams) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range teams {
		var dedicatedTo *string
		if t.DedicatedTo != "" {
			dedicatedTo = &t.DedicatedTo
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO team (id, name, capacity_factor, dedicated_to, excluded)
			VALUES ($1, $2, $3, $4, $5)
		`, t.ID, t.Name, t.CapacityFactor, dedicatedTo, t.Excluded)
		if err != nil {
			return fmt.Errorf("failed to insert team: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
