// Package rules holds the built-in constraint rule implementations. Each
// rule is keyed by a stable constraint code; the catalog decides which are
// enabled and with what weight.
package rules

import "github.com/jakechorley/juryplan/pkg/core/assigner"

// DefaultRegistry returns a registry with every built-in rule registered
func DefaultRegistry() *assigner.Registry {
	registry := assigner.NewRegistry()
	registry.Register(NewOwnMatchRule())
	registry.Register(NewAwayMatchSameDayRule())
	registry.Register(NewShiftContiguityRule())
	registry.Register(NewOneShiftPerWeekendRule())
	registry.Register(NewSimultaneousMatchRule())
	registry.Register(NewMaxMatchesPerDayRule())
	registry.Register(NewPointsAboveAverageRule())
	registry.Register(NewPreserveFreeWeekendsRule())
	registry.Register(NewConsecutiveWeekendsRule())
	registry.Register(NewRecentLoadRule())
	registry.Register(NewPreviousWeekRule())
	registry.Register(NewHomeMatchSameDayRule())
	return registry
}
