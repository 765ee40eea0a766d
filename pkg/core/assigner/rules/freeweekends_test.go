package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// busyWeekends builds one Saturday duty match per trailing weekend
func busyWeekends(n int) ([]db.Match, []db.Assignment) {
	var matches []db.Match
	var assignments []db.Assignment
	start := at("2024-03-02 10:00")
	for week := 1; week <= n; week++ {
		m := db.Match{
			ID:         fmt.Sprintf("w%d", week),
			StartTime:  start.AddDate(0, 0, -7*week),
			HomeTeamID: "h",
			AwayTeamID: "a",
		}
		matches = append(matches, m)
		assignments = append(assignments, db.Assignment{ID: "a" + m.ID, MatchID: m.ID, TeamID: "t1"})
	}
	return matches, assignments
}

func TestPreserveFreeWeekendsRule(t *testing.T) {
	rule := NewPreserveFreeWeekendsRule()
	def := softDef(CodePreserveFreeWeekends, 1, 3)

	candidate := db.Match{ID: "cand", StartTime: at("2024-03-02 10:00"), HomeTeamID: "h", AwayTeamID: "a"}

	t.Run("fully booked lookback is penalized", func(t *testing.T) {
		matches, assignments := busyWeekends(8)
		ctx := newCtx(nil, append(matches, candidate), assignments)
		v := rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx)
		assert.NotNil(t, v)
		assert.Equal(t, assigner.SeveritySoft, v.Severity)
		assert.Equal(t, 0, v.Params["freeWeekends"])
	})

	t.Run("enough free weekends passes", func(t *testing.T) {
		matches, assignments := busyWeekends(6)
		ctx := newCtx(nil, append(matches, candidate), assignments)
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx))
	})

	t.Run("only the first duty of a weekend opens a shift", func(t *testing.T) {
		matches, assignments := busyWeekends(8)
		sameWeekend := db.Match{ID: "same", StartTime: at("2024-03-02 08:00"), HomeTeamID: "h", AwayTeamID: "a"}
		matches = append(matches, sameWeekend, candidate)
		assignments = append(assignments, db.Assignment{ID: "asame", MatchID: "same", TeamID: "t1"})
		ctx := newCtx(nil, matches, assignments)
		assert.Nil(t, rule.Evaluate(def, candidate, db.Team{ID: "t1"}, ctx))
	})

	t.Run("weekday match is unaffected", func(t *testing.T) {
		matches, assignments := busyWeekends(8)
		weekday := db.Match{ID: "wed", StartTime: at("2024-03-06 19:00"), HomeTeamID: "h", AwayTeamID: "a"}
		ctx := newCtx(nil, append(matches, weekday), assignments)
		assert.Nil(t, rule.Evaluate(def, weekday, db.Team{ID: "t1"}, ctx))
	})
}
