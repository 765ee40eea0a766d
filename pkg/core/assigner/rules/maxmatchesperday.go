package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeMaxMatchesPerDay is the constraint code for the daily workload rule
const CodeMaxMatchesPerDay = "max_matches_per_day"

// MaxMatchesPerDayRule penalizes piling a third duty match onto one day.
// Two matches per day is the accepted default; anything beyond gets a soft
// penalty rather than a block.
type MaxMatchesPerDayRule struct{}

func NewMaxMatchesPerDayRule() *MaxMatchesPerDayRule {
	return &MaxMatchesPerDayRule{}
}

func (r *MaxMatchesPerDayRule) Code() string {
	return CodeMaxMatchesPerDay
}

func (r *MaxMatchesPerDayRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	count := 0
	for _, m := range ctx.TeamDutyMatchesOn(team.ID, match.StartTime) {
		if m.ID != match.ID {
			count++
		}
	}
	if count >= 2 {
		return assigner.SoftViolation(def, map[string]any{
			"teamId": team.ID,
			"count":  count,
			"date":   assigner.StartOfDay(match.StartTime),
		})
	}
	return nil
}
