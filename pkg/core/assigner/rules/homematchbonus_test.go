package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestHomeMatchSameDayRule(t *testing.T) {
	rule := NewHomeMatchSameDayRule()
	def := softDef(CodeHomeMatchSameDay, 1, 5)

	duty := db.Match{ID: "duty", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h1", AwayTeamID: "a1"}

	t.Run("home fixture two hours away earns the bonus", func(t *testing.T) {
		home := db.Match{ID: "home", StartTime: at("2024-03-02 13:00"), HomeTeamID: "t1", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{duty, home}, nil)
		v := rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeverityBonus, v.Severity)
		assert.Equal(t, 5, v.ScoreDelta)
	})

	t.Run("home fixture too close earns nothing", func(t *testing.T) {
		home := db.Match{ID: "home", StartTime: at("2024-03-02 11:00"), HomeTeamID: "t1", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{duty, home}, nil)
		assert.Nil(t, rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx))
	})

	t.Run("home fixture on another day earns nothing", func(t *testing.T) {
		home := db.Match{ID: "home", StartTime: at("2024-03-03 13:00"), HomeTeamID: "t1", AwayTeamID: "a2"}
		ctx := newCtx(nil, []db.Match{duty, home}, nil)
		assert.Nil(t, rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx))
	})

	t.Run("away fixture earns nothing", func(t *testing.T) {
		away := db.Match{ID: "away", StartTime: at("2024-03-02 13:00"), HomeTeamID: "h2", AwayTeamID: "t1"}
		ctx := newCtx(nil, []db.Match{duty, away}, nil)
		assert.Nil(t, rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx))
	})
}
