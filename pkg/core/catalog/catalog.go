// Package catalog manages the constraint definition catalog: seed data,
// enable/disable toggles and weight edits over a ConstraintStore.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/go-playground/validator/v10"

	"github.com/jakechorley/juryplan/pkg/core/assigner/rules"
	"github.com/jakechorley/juryplan/pkg/db"
)

// DeprecatedCodes are obsolete constraint codes purged unconditionally on
// every catalog initialization.
var DeprecatedCodes = []string{
	"travel_distance",
	"referee_card",
}

var validate = validator.New()

// Update carries the editable fields of a constraint definition. Name,
// Kind and Weight are required.
type Update struct {
	Name          string            `validate:"required"`
	Kind          db.ConstraintKind `validate:"required,oneof=hard soft"`
	Category      string
	Weight        float64 `validate:"required,gte=0"`
	PenaltyPoints int     `validate:"gte=0"`
}

// Catalog exposes the constraint definitions to the engine and the CLI
type Catalog struct {
	store db.ConstraintStore
}

// New creates a catalog over a constraint store
func New(store db.ConstraintStore) *Catalog {
	return &Catalog{store: store}
}

// Init purges deprecated codes and seeds the default definitions when the
// catalog is empty. Seeding is idempotent; existing definitions are never
// overwritten.
func (c *Catalog) Init(ctx context.Context) error {
	if err := c.store.DeleteConstraints(ctx, DeprecatedCodes); err != nil {
		return fmt.Errorf("failed to purge deprecated constraints: %w", err)
	}

	existing, err := c.store.GetConstraints(ctx)
	if err != nil {
		return fmt.Errorf("failed to list constraints: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	if err := c.store.InsertConstraints(ctx, DefaultConstraints()); err != nil {
		return fmt.Errorf("failed to seed constraints: %w", err)
	}
	return nil
}

// ListEnabled returns the enabled definitions sorted by weight descending,
// then category.
func (c *Catalog) ListEnabled(ctx context.Context) ([]db.ConstraintDefinition, error) {
	defs, err := c.store.GetConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list constraints: %w", err)
	}

	enabled := defs[:0]
	for _, def := range defs {
		if def.Enabled {
			enabled = append(enabled, def)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		if enabled[i].Weight != enabled[j].Weight {
			return enabled[i].Weight > enabled[j].Weight
		}
		return enabled[i].Category < enabled[j].Category
	})
	return enabled, nil
}

// List returns every definition, enabled or not, in the same order
func (c *Catalog) List(ctx context.Context) ([]db.ConstraintDefinition, error) {
	defs, err := c.store.GetConstraints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list constraints: %w", err)
	}
	sort.SliceStable(defs, func(i, j int) bool {
		if defs[i].Weight != defs[j].Weight {
			return defs[i].Weight > defs[j].Weight
		}
		return defs[i].Category < defs[j].Category
	})
	return defs, nil
}

// Get returns the definition for a code
func (c *Catalog) Get(ctx context.Context, code string) (db.ConstraintDefinition, error) {
	return c.store.GetConstraint(ctx, code)
}

// SetEnabled toggles a constraint on or off
func (c *Catalog) SetEnabled(ctx context.Context, code string, enabled bool) error {
	def, err := c.store.GetConstraint(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to get constraint %s: %w", code, err)
	}
	def.Enabled = enabled
	if err := c.store.UpdateConstraint(ctx, def); err != nil {
		return fmt.Errorf("failed to update constraint %s: %w", code, err)
	}
	return nil
}

// ApplyUpdate validates and applies an edit to a constraint definition.
// Missing required fields are rejected without touching the store.
func (c *Catalog) ApplyUpdate(ctx context.Context, code string, update Update) error {
	if err := validate.Struct(update); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return fmt.Errorf("constraint update validation failed: %w", err)
		}
		return fmt.Errorf("invalid constraint update for %s: %w", code, err)
	}

	def, err := c.store.GetConstraint(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to get constraint %s: %w", code, err)
	}

	def.Name = update.Name
	def.Kind = update.Kind
	def.Weight = update.Weight
	def.PenaltyPoints = update.PenaltyPoints
	if update.Category != "" {
		def.Category = update.Category
	}

	if err := c.store.UpdateConstraint(ctx, def); err != nil {
		return fmt.Errorf("failed to update constraint %s: %w", code, err)
	}
	return nil
}

// DefaultConstraints returns the seed catalog. Weights and penalties match
// the deployed defaults; hard constraints carry no penalty points because
// a violation disqualifies outright.
func DefaultConstraints() []db.ConstraintDefinition {
	return []db.ConstraintDefinition{
		{Code: rules.CodeOwnMatch, Name: "Own or dedicated match", Category: "eligibility", Kind: db.KindHard, Enabled: true, Weight: 10},
		{Code: rules.CodeAwayMatchSameDay, Name: "Away fixture same day", Category: "availability", Kind: db.KindHard, Enabled: true, Weight: 10},
		{Code: rules.CodeSimultaneousMatch, Name: "Simultaneous match", Category: "availability", Kind: db.KindHard, Enabled: true, Weight: 10},
		{Code: rules.CodeShiftContiguity, Name: "Single contiguous shift per day", Category: "availability", Kind: db.KindHard, Enabled: true, Weight: 9},
		{Code: rules.CodeOneShiftPerWeekend, Name: "One shift per weekend", Category: "workload", Kind: db.KindHard, Enabled: true, Weight: 9},
		{Code: rules.CodeMaxMatchesPerDay, Name: "At most two matches per day", Category: "workload", Kind: db.KindSoft, Enabled: true, Weight: 2, PenaltyPoints: 5},
		{Code: rules.CodePointsAboveAverage, Name: "Cumulative points above average", Category: "fairness", Kind: db.KindSoft, Enabled: true, Weight: 1.5, PenaltyPoints: 4},
		{Code: rules.CodeRecentLoad, Name: "Recent assignment load", Category: "workload", Kind: db.KindSoft, Enabled: true, Weight: 1.5, PenaltyPoints: 2},
		{Code: rules.CodePreserveFreeWeekends, Name: "Preserve free weekends", Category: "workload", Kind: db.KindSoft, Enabled: true, Weight: 1, PenaltyPoints: 3},
		{Code: rules.CodeConsecutiveWeekends, Name: "Consecutive weekends", Category: "workload", Kind: db.KindSoft, Enabled: true, Weight: 1, PenaltyPoints: 3},
		{Code: rules.CodePreviousWeek, Name: "Assignment in previous week", Category: "workload", Kind: db.KindSoft, Enabled: true, Weight: 1, PenaltyPoints: 2},
		{Code: rules.CodeHomeMatchSameDay, Name: "Home fixture same day", Category: "bonus", Kind: db.KindSoft, Enabled: true, Weight: 1, PenaltyPoints: 5},
	}
}
