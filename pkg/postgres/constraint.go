package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jakechorley/juryplan/pkg/db"
)

func scanConstraint(row pgx.Row) (db.ConstraintDefinition, error) {
	var c db.ConstraintDefinition
	var kind string
	err := row.Scan(&c.Code, &c.Name, &c.Category, &kind, &c.Enabled, &c.Weight, &c.PenaltyPoints)
	if err != nil {
		return db.ConstraintDefinition{}, err
	}
	c.Kind = db.ConstraintKind(kind)
	return c, nil
}

// GetConstraints retrieves all constraint definitions
func (d *DB) GetConstraints(ctx context.Context) ([]db.ConstraintDefinition, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT code, name, category, kind, enabled, weight, penalty_points
		FROM constraint_definition
		ORDER BY code
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query constraints: %w", err)
	}
	defer rows.Close()

	var defs []db.ConstraintDefinition
	for rows.Next() {
		c, err := scanConstraint(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan constraint: %w", err)
		}
		defs = append(defs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating constraints: %w", err)
	}
	return defs, nil
}

// GetConstraint retrieves a single constraint definition by code
func (d *DB) GetConstraint(ctx context.Context, code string) (db.ConstraintDefinition, error) {
	row := d.pool.QueryRow(ctx, `
		SELECT code, name, category, kind, enabled, weight, penalty_points
		FROM constraint_definition
		WHERE code = $1
	`, code)

	c, err := scanConstraint(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ConstraintDefinition{}, db.ErrNotFound
	}
	if err != nil {
		return db.ConstraintDefinition{}, fmt.Errorf("failed to get constraint %s: %w", code, err)
	}
	return c, nil
}

// InsertConstraints inserts constraint definitions in a single transaction
func (d *DB) InsertConstraints(ctx context.Context, defs []db.ConstraintDefinition) error {
	if len(defs) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, c := range defs {
		_, err := tx.Exec(ctx, `
			INSERT INTO constraint_definition (code, name, category, kind, enabled, weight, penalty_points)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`, c.Code, c.Name, c.Category, string(c.Kind), c.Enabled, c.Weight, c.PenaltyPoints)
		if err != nil {
			return fmt.Errorf("failed to insert constraint %s: %w", c.Code, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateConstraint updates a constraint definition by code
func (d *DB) UpdateConstraint(ctx context.Context, def db.ConstraintDefinition) error {
	tag, err := d.pool.Exec(ctx, `
		UPDATE constraint_definition
		SET name = $2, category = $3, kind = $4, enabled = $5, weight = $6, penalty_points = $7
		WHERE code = $1
	`, def.Code, def.Name, def.Category, string(def.Kind), def.Enabled, def.Weight, def.PenaltyPoints)
	if err != nil {
		return fmt.Errorf("failed to update constraint %s: %w", def.Code, err)
	}
	if tag.RowsAffected() == 0 {
		return db.ErrNotFound
	}
	return nil
}

// DeleteConstraints removes the definitions with the given codes. Missing
// codes are ignored.
func (d *DB) DeleteConstraints(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return nil
	}
	_, err := d.pool.Exec(ctx, `DELETE FROM constraint_definition WHERE code = ANY($1)`, codes)
	if err != nil {
		return fmt.Errorf("failed to delete constraints: %w", err)
	}
	return nil
}
