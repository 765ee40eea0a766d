package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeOneShiftPerWeekend is the constraint code for the weekend-shift rule
const CodeOneShiftPerWeekend = "one_shift_per_weekend"

// OneShiftPerWeekendRule blocks a second, separate shift within the
// Saturday-Sunday window containing the match date. Duty on the other
// weekend day is always a separate shift; same-day additions are governed
// by the contiguity rule instead. Weekday matches are unaffected.
type OneShiftPerWeekendRule struct{}

func NewOneShiftPerWeekendRule() *OneShiftPerWeekendRule {
	return &OneShiftPerWeekendRule{}
}

func (r *OneShiftPerWeekendRule) Code() string {
	return CodeOneShiftPerWeekend
}

func (r *OneShiftPerWeekendRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	weekendStart, ok := assigner.WeekendOf(match.StartTime)
	if !ok {
		return nil
	}

	duty := ctx.TeamDutyMatches(team.ID, weekendStart, assigner.WeekendEnd(weekendStart))
	for _, m := range duty {
		if m.ID == match.ID {
			continue
		}
		if !assigner.SameDay(m.StartTime, match.StartTime) {
			return assigner.HardViolation(def, map[string]any{
				"teamId":        team.ID,
				"existingMatch": m.ID,
				"weekendStart":  weekendStart,
			})
		}
	}
	return nil
}
