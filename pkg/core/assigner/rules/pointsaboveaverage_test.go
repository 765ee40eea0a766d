package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestPointsAboveAverageRule(t *testing.T) {
	rule := NewPointsAboveAverageRule()
	def := softDef(CodePointsAboveAverage, 1.5, 4)

	teams := []db.Team{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}
	matches := []db.Match{
		{ID: "m0", StartTime: at("2024-02-03 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "m1", StartTime: at("2024-02-10 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "m2", StartTime: at("2024-02-17 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "m3", StartTime: at("2024-02-24 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "m4", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "m5", StartTime: at("2024-03-09 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
	}
	// t1 holds 20 points, t2 and t3 hold 10 each
	assignments := []db.Assignment{
		{ID: "a1", MatchID: "m1", TeamID: "t1"},
		{ID: "a2", MatchID: "m2", TeamID: "t1"},
		{ID: "a3", MatchID: "m3", TeamID: "t2"},
		{ID: "a4", MatchID: "m4", TeamID: "t3"},
	}
	ctx := newCtx(teams, matches, assignments)
	candidate := matches[5]

	t.Run("team well above the others is penalized", func(t *testing.T) {
		v := rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeveritySoft, v.Severity)
		assert.Equal(t, 20, v.Params["teamPoints"])
		assert.InDelta(t, 10.0, v.Params["othersAverage"].(float64), 0.001)
	})

	t.Run("team within the margin passes", func(t *testing.T) {
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t2"}, ctx))
	})

	t.Run("single team has no peers to compare", func(t *testing.T) {
		solo := newCtx(teams[:1], matches, assignments[:2])
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t1"}, solo))
	})
}
