package assigner

import (
	"sort"

	"github.com/jakechorley/juryplan/pkg/db"
)

// Rule checks one constraint for a (match, team) pair against the working
// set. A nil result means the constraint is satisfied. The rule receives
// its catalog definition so penalty weights stay configurable.
type Rule interface {
	// Code returns the stable constraint code this rule implements
	Code() string

	// Evaluate returns a violation (or bonus) when the condition triggers
	Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *Context) *Violation
}

// Registry maps constraint codes to rule implementations. Codes present in
// the catalog but absent from the registry are no-ops by contract, so new
// constraints can be configured before their check logic ships.
type Registry struct {
	rules map[string]Rule
}

// NewRegistry creates an empty rule registry
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]Rule)}
}

// Register adds a rule, replacing any previous rule with the same code
func (r *Registry) Register(rule Rule) {
	r.rules[rule.Code()] = rule
}

// Lookup returns the rule for a code
func (r *Registry) Lookup(code string) (Rule, bool) {
	rule, ok := r.rules[code]
	return rule, ok
}

// Codes returns all registered codes, sorted
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.rules))
	for code := range r.rules {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
