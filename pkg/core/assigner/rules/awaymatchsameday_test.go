package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestAwayMatchSameDayRule(t *testing.T) {
	rule := NewAwayMatchSameDayRule()
	def := hardDef(CodeAwayMatchSameDay)

	duty := db.Match{ID: "duty", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h1", AwayTeamID: "a1"}
	awayFixture := db.Match{ID: "away", StartTime: at("2024-03-02 15:00"), HomeTeamID: "h2", AwayTeamID: "t1"}

	t.Run("away fixture same day blocks", func(t *testing.T) {
		ctx := newCtx(nil, []db.Match{duty, awayFixture}, nil)
		v := rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeverityHard, v.Severity)
		assert.Equal(t, "away", v.Params["awayFixtureId"])
	})

	t.Run("away fixture on another day passes", func(t *testing.T) {
		moved := awayFixture
		moved.StartTime = at("2024-03-03 15:00")
		ctx := newCtx(nil, []db.Match{duty, moved}, nil)
		assert.Nil(t, rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx))
	})

	t.Run("home fixture same day passes", func(t *testing.T) {
		home := db.Match{ID: "home", StartTime: at("2024-03-02 15:00"), HomeTeamID: "t1", AwayTeamID: "h2"}
		ctx := newCtx(nil, []db.Match{duty, home}, nil)
		assert.Nil(t, rule.Evaluate(def, duty, db.Team{ID: "t1"}, ctx))
	})
}
