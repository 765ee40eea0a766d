package rules

import (
	"time"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeHomeMatchSameDay is the constraint code for the on-site bonus
const CodeHomeMatchSameDay = "home_match_same_day"

// homeMatchMinSeparation keeps the bonus from rewarding a home fixture
// that collides with the candidate match
const homeMatchMinSeparation = 2 * time.Hour

// HomeMatchSameDayRule rewards a team that already plays a home fixture
// the same day, at least two hours removed from the candidate match: the
// team is on-site anyway.
type HomeMatchSameDayRule struct{}

func NewHomeMatchSameDayRule() *HomeMatchSameDayRule {
	return &HomeMatchSameDayRule{}
}

func (r *HomeMatchSameDayRule) Code() string {
	return CodeHomeMatchSameDay
}

func (r *HomeMatchSameDayRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	for _, fixture := range ctx.Matches {
		if fixture.HomeTeamID != team.ID || fixture.ID == match.ID {
			continue
		}
		if !assigner.SameDay(fixture.StartTime, match.StartTime) {
			continue
		}
		separation := fixture.StartTime.Sub(match.StartTime)
		if separation < 0 {
			separation = -separation
		}
		if separation >= homeMatchMinSeparation {
			return assigner.BonusResult(def, map[string]any{
				"teamId":        team.ID,
				"homeFixtureId": fixture.ID,
			})
		}
	}
	return nil
}
