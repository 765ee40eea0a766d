package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodeOwnMatch is the constraint code for the own-match rule
const CodeOwnMatch = "own_match"

// OwnMatchRule disqualifies a team from a match it plays in. A dedicated
// team is additionally restricted to matches involving its dedicated team.
type OwnMatchRule struct{}

func NewOwnMatchRule() *OwnMatchRule {
	return &OwnMatchRule{}
}

func (r *OwnMatchRule) Code() string {
	return CodeOwnMatch
}

func (r *OwnMatchRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	if team.ID == match.HomeTeamID || team.ID == match.AwayTeamID {
		return assigner.HardViolation(def, map[string]any{
			"teamId":  team.ID,
			"matchId": match.ID,
		})
	}

	// Dedication is an inert hook in most deployments: lookups normally
	// return no dedication, but when set it binds eligibility to matches
	// involving the dedicated team.
	if team.DedicatedTo != "" && team.DedicatedTo != match.HomeTeamID && team.DedicatedTo != match.AwayTeamID {
		return assigner.HardViolation(def, map[string]any{
			"teamId":      team.ID,
			"matchId":     match.ID,
			"dedicatedTo": team.DedicatedTo,
		})
	}

	return nil
}
