package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodePreviousWeek is the constraint code for the previous-week rule
const CodePreviousWeek = "previous_week"

// PreviousWeekRule penalizes a team that already held duty in the ISO
// calendar week immediately before the match's week.
type PreviousWeekRule struct{}

func NewPreviousWeekRule() *PreviousWeekRule {
	return &PreviousWeekRule{}
}

func (r *PreviousWeekRule) Code() string {
	return CodePreviousWeek
}

func (r *PreviousWeekRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	prevYear, prevWeek := assigner.ISOWeek(match.StartTime.AddDate(0, 0, -7))

	for _, a := range ctx.AssignmentsForTeam(team.ID) {
		m, ok := ctx.MatchByID(a.MatchID)
		if !ok || m.ID == match.ID {
			continue
		}
		year, week := assigner.ISOWeek(m.StartTime)
		if year == prevYear && week == prevWeek {
			return assigner.SoftViolation(def, map[string]any{
				"teamId":  team.ID,
				"isoYear": prevYear,
				"isoWeek": prevWeek,
			})
		}
	}
	return nil
}
