package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestShiftContiguityRule(t *testing.T) {
	rule := NewShiftContiguityRule()
	def := hardDef(CodeShiftContiguity)

	existing := db.Match{ID: "m1", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h", AwayTeamID: "a"}
	assignment := db.Assignment{ID: "a1", MatchID: "m1", TeamID: "t1"}

	t.Run("gap within limit passes", func(t *testing.T) {
		// m1 ends 11:30, 120 minutes later is 13:30
		next := db.Match{ID: "m2", StartTime: at("2024-03-02 13:30"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, []db.Match{existing, next}, []db.Assignment{assignment})
		assert.Nil(t, rule.Evaluate(def, next, db.Team{ID: "t1"}, ctx))
	})

	t.Run("gap beyond limit blocks", func(t *testing.T) {
		next := db.Match{ID: "m2", StartTime: at("2024-03-02 14:00"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, []db.Match{existing, next}, []db.Assignment{assignment})
		v := rule.Evaluate(def, next, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeverityHard, v.Severity)
		assert.Equal(t, 150, v.Params["gapMinutes"])
	})

	t.Run("candidate earlier than existing duty is checked too", func(t *testing.T) {
		early := db.Match{ID: "m0", StartTime: at("2024-03-02 06:00"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, []db.Match{early, existing}, []db.Assignment{assignment})
		assert.NotNil(t, rule.Evaluate(def, early, db.Team{ID: "t1"}, ctx))
	})

	t.Run("no same-day duty passes", func(t *testing.T) {
		next := db.Match{ID: "m2", StartTime: at("2024-03-03 18:00"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, []db.Match{existing, next}, []db.Assignment{assignment})
		assert.Nil(t, rule.Evaluate(def, next, db.Team{ID: "t1"}, ctx))
	})
}
