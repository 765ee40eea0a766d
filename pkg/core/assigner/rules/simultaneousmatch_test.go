package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestSimultaneousMatchRule(t *testing.T) {
	rule := NewSimultaneousMatchRule()
	def := hardDef(CodeSimultaneousMatch)

	m1 := db.Match{ID: "m1", StartTime: at("2024-03-02 14:00"), HomeTeamID: "h1", AwayTeamID: "a1"}
	assignment := db.Assignment{ID: "a1", MatchID: "m1", TeamID: "t1"}

	t.Run("identical start time blocks", func(t *testing.T) {
		m2 := db.Match{ID: "m2", StartTime: at("2024-03-02 14:00"), HomeTeamID: "h2", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{m1, m2}, []db.Assignment{assignment})
		v := rule.Evaluate(def, m2, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeverityHard, v.Severity)
		assert.Equal(t, "m1", v.Params["conflictMatchId"])
	})

	t.Run("different start time passes", func(t *testing.T) {
		m2 := db.Match{ID: "m2", StartTime: at("2024-03-02 16:00"), HomeTeamID: "h2", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{m1, m2}, []db.Assignment{assignment})
		assert.Nil(t, rule.Evaluate(def, m2, db.Team{ID: "t1"}, ctx))
	})

	t.Run("other teams are unaffected", func(t *testing.T) {
		m2 := db.Match{ID: "m2", StartTime: at("2024-03-02 14:00"), HomeTeamID: "h2", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{m1, m2}, []db.Assignment{assignment})
		assert.Nil(t, rule.Evaluate(def, m2, db.Team{ID: "t2"}, ctx))
	})
}
