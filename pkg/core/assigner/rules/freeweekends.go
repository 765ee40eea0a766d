package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodePreserveFreeWeekends is the constraint code for the free-weekend rule
const CodePreserveFreeWeekends = "preserve_free_weekends"

const (
	// freeWeekendLookback is how many weekends before the match's weekend
	// are inspected
	freeWeekendLookback = 8

	// minFreeWeekends is the minimum number of fully duty-free weekends a
	// team should keep within the lookback window
	minFreeWeekends = 2
)

// PreserveFreeWeekendsRule penalizes starting a new weekend shift for a
// team that has had fewer than two duty-free weekends in the trailing
// eight weeks. Only fires when this would be the team's first duty that
// weekend; weekday matches are unaffected.
type PreserveFreeWeekendsRule struct{}

func NewPreserveFreeWeekendsRule() *PreserveFreeWeekendsRule {
	return &PreserveFreeWeekendsRule{}
}

func (r *PreserveFreeWeekendsRule) Code() string {
	return CodePreserveFreeWeekends
}

func (r *PreserveFreeWeekendsRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	weekendStart, ok := assigner.WeekendOf(match.StartTime)
	if !ok {
		return nil
	}

	// Only a team's first duty of the weekend opens a new shift
	for _, m := range ctx.TeamDutyMatches(team.ID, weekendStart, assigner.WeekendEnd(weekendStart)) {
		if m.ID != match.ID {
			return nil
		}
	}

	freeWeekends := 0
	for week := 1; week <= freeWeekendLookback; week++ {
		start := weekendStart.AddDate(0, 0, -7*week)
		if len(ctx.TeamDutyMatches(team.ID, start, assigner.WeekendEnd(start))) == 0 {
			freeWeekends++
		}
	}

	if freeWeekends < minFreeWeekends {
		return assigner.SoftViolation(def, map[string]any{
			"teamId":       team.ID,
			"freeWeekends": freeWeekends,
			"lookback":     freeWeekendLookback,
		})
	}
	return nil
}
