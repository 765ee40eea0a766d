package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeRecentLoad is the constraint code for the load-balancing rule
const CodeRecentLoad = "recent_load"

const (
	// recentLoadWindowDays is the trailing window inspected for load
	recentLoadWindowDays = 14

	// recentLoadThreshold is how many assignments in the window are
	// tolerated before the penalty starts
	recentLoadThreshold = 2
)

// RecentLoadRule penalizes teams that have been assigned often in the
// trailing two weeks. The penalty scales with the assignment count so a
// heavily loaded team sinks faster in the ranking.
type RecentLoadRule struct{}

func NewRecentLoadRule() *RecentLoadRule {
	return &RecentLoadRule{}
}

func (r *RecentLoadRule) Code() string {
	return CodeRecentLoad
}

func (r *RecentLoadRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	from := match.StartTime.AddDate(0, 0, -recentLoadWindowDays)
	recent := 0
	for _, m := range ctx.TeamDutyMatches(team.ID, from, match.StartTime) {
		if m.ID != match.ID {
			recent++
		}
	}
	if recent > recentLoadThreshold {
		return assigner.ScaledSoftViolation(def, recent, map[string]any{
			"teamId":     team.ID,
			"count":      recent,
			"windowDays": recentLoadWindowDays,
		})
	}
	return nil
}
