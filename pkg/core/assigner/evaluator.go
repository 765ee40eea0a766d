package assigner

import (
	"sort"

	"github.com/jakechorley/juryplan/pkg/db"
)

// Evaluator runs every enabled constraint against a (match, team) pair.
// Definitions are evaluated in the order given (the catalog orders them by
// weight descending, then category).
type Evaluator struct {
	registry  *Registry
	defs      []db.ConstraintDefinition
	uncovered map[string]bool
}

// NewEvaluator creates an evaluator over the enabled constraint definitions
func NewEvaluator(registry *Registry, enabled []db.ConstraintDefinition) *Evaluator {
	return &Evaluator{
		registry:  registry,
		defs:      enabled,
		uncovered: make(map[string]bool),
	}
}

// Evaluate returns the violations and bonuses for assigning team to match.
// Constraint codes without a registered rule are skipped; they are recorded
// as coverage gaps rather than raised as errors.
func (e *Evaluator) Evaluate(match db.Match, team db.Team, ctx *Context) []Violation {
	var violations []Violation
	for _, def := range e.defs {
		if !def.Enabled {
			continue
		}
		rule, ok := e.registry.Lookup(def.Code)
		if !ok {
			e.uncovered[def.Code] = true
			continue
		}
		if v := rule.Evaluate(def, match, team, ctx); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// UncoveredCodes returns the enabled constraint codes that had no rule
// implementation during evaluation, sorted. Callers log these as gaps in
// rule coverage.
func (e *Evaluator) UncoveredCodes() []string {
	codes := make([]string, 0, len(e.uncovered))
	for code := range e.uncovered {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// HasHardViolation reports whether any violation is disqualifying
func HasHardViolation(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity == SeverityHard {
			return true
		}
	}
	return false
}
