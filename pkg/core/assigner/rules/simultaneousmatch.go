package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeSimultaneousMatch is the constraint code for the same-timestamp rule
const CodeSimultaneousMatch = "simultaneous_match"

// SimultaneousMatchRule blocks a team from holding duty on two different
// matches that start at the exact same timestamp.
type SimultaneousMatchRule struct{}

func NewSimultaneousMatchRule() *SimultaneousMatchRule {
	return &SimultaneousMatchRule{}
}

func (r *SimultaneousMatchRule) Code() string {
	return CodeSimultaneousMatch
}

func (r *SimultaneousMatchRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	for _, a := range ctx.AssignmentsForTeam(team.ID) {
		if a.MatchID == match.ID {
			continue
		}
		other, ok := ctx.MatchByID(a.MatchID)
		if !ok {
			continue
		}
		if other.StartTime.Equal(match.StartTime) {
			return assigner.HardViolation(def, map[string]any{
				"teamId":          team.ID,
				"conflictMatchId": other.ID,
				"startTime":       match.StartTime,
			})
		}
	}
	return nil
}
