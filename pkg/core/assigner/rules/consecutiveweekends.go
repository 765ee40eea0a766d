package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeConsecutiveWeekends is the constraint code for back-to-back weekends
const CodeConsecutiveWeekends = "consecutive_weekends"

// ConsecutiveWeekendsRule penalizes duty on the weekend immediately before
// or after a weekend the team already serves. Weekday matches are
// unaffected.
type ConsecutiveWeekendsRule struct{}

func NewConsecutiveWeekendsRule() *ConsecutiveWeekendsRule {
	return &ConsecutiveWeekendsRule{}
}

func (r *ConsecutiveWeekendsRule) Code() string {
	return CodeConsecutiveWeekends
}

func (r *ConsecutiveWeekendsRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	weekendStart, ok := assigner.WeekendOf(match.StartTime)
	if !ok {
		return nil
	}

	for _, offset := range []int{-7, 7} {
		start := weekendStart.AddDate(0, 0, offset)
		if len(ctx.TeamDutyMatches(team.ID, start, assigner.WeekendEnd(start))) > 0 {
			return assigner.SoftViolation(def, map[string]any{
				"teamId":          team.ID,
				"adjacentWeekend": start,
			})
		}
	}
	return nil
}
