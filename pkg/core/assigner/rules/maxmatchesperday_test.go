package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestMaxMatchesPerDayRule(t *testing.T) {
	rule := NewMaxMatchesPerDayRule()
	def := softDef(CodeMaxMatchesPerDay, 2, 5)

	m1 := db.Match{ID: "m1", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h", AwayTeamID: "a"}
	m2 := db.Match{ID: "m2", StartTime: at("2024-03-02 12:00"), HomeTeamID: "h", AwayTeamID: "a"}
	m3 := db.Match{ID: "m3", StartTime: at("2024-03-02 14:00"), HomeTeamID: "h", AwayTeamID: "a"}

	t.Run("third match of the day is penalized", func(t *testing.T) {
		ctx := newCtx(nil, []db.Match{m1, m2, m3}, []db.Assignment{
			{ID: "a1", MatchID: "m1", TeamID: "t1"},
			{ID: "a2", MatchID: "m2", TeamID: "t1"},
		})
		v := rule.Evaluate(def, m3, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeveritySoft, v.Severity)
		assert.Equal(t, -10, v.ScoreDelta)
	})

	t.Run("second match of the day passes", func(t *testing.T) {
		ctx := newCtx(nil, []db.Match{m1, m2, m3}, []db.Assignment{
			{ID: "a1", MatchID: "m1", TeamID: "t1"},
		})
		assert.Nil(t, rule.Evaluate(def, m2, db.Team{ID: "t1"}, ctx))
	})

	t.Run("duty on other days does not count", func(t *testing.T) {
		other := db.Match{ID: "m4", StartTime: at("2024-03-01 10:00"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, []db.Match{m1, m2, m3, other}, []db.Assignment{
			{ID: "a1", MatchID: "m1", TeamID: "t1"},
			{ID: "a2", MatchID: "m4", TeamID: "t1"},
		})
		assert.Nil(t, rule.Evaluate(def, m2, db.Team{ID: "t1"}, ctx))
	})
}
