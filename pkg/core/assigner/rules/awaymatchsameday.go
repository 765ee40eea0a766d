package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeAwayMatchSameDay is the constraint code for the away-fixture rule
const CodeAwayMatchSameDay = "away_match_same_day"

// AwayMatchSameDayRule disqualifies a team that plays an away fixture on
// the match's calendar date: the team is travelling and cannot hold duty.
type AwayMatchSameDayRule struct{}

func NewAwayMatchSameDayRule() *AwayMatchSameDayRule {
	return &AwayMatchSameDayRule{}
}

func (r *AwayMatchSameDayRule) Code() string {
	return CodeAwayMatchSameDay
}

func (r *AwayMatchSameDayRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	for _, fixture := range ctx.Matches {
		if fixture.AwayTeamID != team.ID {
			continue
		}
		if !assigner.SameDay(fixture.StartTime, match.StartTime) {
			continue
		}
		return assigner.HardViolation(def, map[string]any{
			"teamId":        team.ID,
			"awayFixtureId": fixture.ID,
			"date":          assigner.StartOfDay(match.StartTime),
		})
	}
	return nil
}
