package rules

import (
	"sort"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeShiftContiguity is the constraint code for the single-shift rule
const CodeShiftContiguity = "shift_contiguity"

// ShiftContiguityRule keeps a team's duty matches on one day
// time-contiguous: the gap between the end of one duty match and the start
// of the next must not exceed assigner.MaxShiftGap. A non-contiguous
// same-day schedule would split the day into two shifts.
type ShiftContiguityRule struct{}

func NewShiftContiguityRule() *ShiftContiguityRule {
	return &ShiftContiguityRule{}
}

func (r *ShiftContiguityRule) Code() string {
	return CodeShiftContiguity
}

func (r *ShiftContiguityRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	sameDay := ctx.TeamDutyMatchesOn(team.ID, match.StartTime)
	if len(sameDay) == 0 {
		return nil
	}

	schedule := make([]db.Match, 0, len(sameDay)+1)
	for _, m := range sameDay {
		if m.ID != match.ID {
			schedule = append(schedule, m)
		}
	}
	schedule = append(schedule, match)
	sort.SliceStable(schedule, func(i, j int) bool {
		return schedule[i].StartTime.Before(schedule[j].StartTime)
	})

	for i := 1; i < len(schedule); i++ {
		end := schedule[i-1].StartTime.Add(assigner.MatchDuration)
		gap := schedule[i].StartTime.Sub(end)
		if gap > assigner.MaxShiftGap {
			return assigner.HardViolation(def, map[string]any{
				"teamId":     team.ID,
				"gapMinutes": int(gap.Minutes()),
				"afterMatch": schedule[i-1].ID,
				"nextMatch":  schedule[i].ID,
			})
		}
	}
	return nil
}
