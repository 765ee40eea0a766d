package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/core/assigner/rules"
	"github.com/jakechorley/juryplan/pkg/core/fairness"
	"github.com/jakechorley/juryplan/pkg/db"
)

// SnapshotStore supplies the consistent read state every engine run needs
type SnapshotStore interface {
	GetMatches(ctx context.Context) ([]db.Match, error)
	GetEligibleTeams(ctx context.Context) ([]db.Team, error)
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
	GetConstraints(ctx context.Context) ([]db.ConstraintDefinition, error)
}

// sortEnabled filters to enabled definitions and orders them by weight
// descending, then category, matching the catalog's evaluation order.
func sortEnabled(defs []db.ConstraintDefinition) []db.ConstraintDefinition {
	var enabled []db.ConstraintDefinition
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
	return enabled
}

// loadEngine builds a working set and an engine from one store snapshot
func loadEngine(ctx context.Context, store SnapshotStore, staticTeamID string) (*assigner.Engine, *assigner.Context, error) {
	matches, err := store.GetMatches(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	teams, err := store.GetEligibleTeams(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	assignments, err := store.GetAssignments(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}
	defs, err := store.GetConstraints(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch constraints: %w", err)
	}

	tracker := fairness.NewTracker(staticTeamID)
	working := assigner.NewContext(teams, matches, assignments, tracker)
	evaluator := assigner.NewEvaluator(rules.DefaultRegistry(), sortEnabled(defs))
	return assigner.NewEngine(evaluator), working, nil
}
