package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

func TestRecentLoadRule(t *testing.T) {
	rule := NewRecentLoadRule()
	def := softDef(CodeRecentLoad, 1.5, 2)

	candidate := db.Match{ID: "cand", StartTime: at("2024-03-15 10:00"), HomeTeamID: "h", AwayTeamID: "a"}
	recent := []db.Match{
		{ID: "r1", StartTime: at("2024-03-03 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "r2", StartTime: at("2024-03-08 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
		{ID: "r3", StartTime: at("2024-03-12 10:00"), HomeTeamID: "h", AwayTeamID: "a"},
	}

	assign := func(matches []db.Match) []db.Assignment {
		var out []db.Assignment
		for _, m := range matches {
			out = append(out, db.Assignment{ID: "a" + m.ID, MatchID: m.ID, TeamID: "t1"})
		}
		return out
	}

	t.Run("penalty scales with the assignment count", func(t *testing.T) {
		ctx := newCtx(nil, append(recent, candidate), assign(recent))
		v := rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeveritySoft, v.Severity)
		assert.Equal(t, 3, v.Params["count"])
		assert.Equal(t, -9, v.ScoreDelta)
	})

	t.Run("load at the threshold passes", func(t *testing.T) {
		ctx := newCtx(nil, append(recent[:2], candidate), assign(recent[:2]))
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx))
	})

	t.Run("duty outside the window does not count", func(t *testing.T) {
		old := db.Match{ID: "old", StartTime: at("2024-02-20 10:00"), HomeTeamID: "h", AwayTeamID: "a"}
		matches := append([]db.Match{old}, recent[:2]...)
		ctx := newCtx(nil, append(matches, candidate), assign(matches))
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx))
	})
}
