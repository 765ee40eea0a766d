package assigner

import (
	"time"

	"github.com/jakechorley/juryplan/pkg/core/fairness"
	"github.com/jakechorley/juryplan/pkg/db"
)

// IneligibleScore is the sentinel value for candidates with a hard
// violation. It ranks below any reachable score.
const IneligibleScore = -1000

// CandidateScore is the ranked evaluation result for one candidate team
type CandidateScore struct {
	Team       db.Team
	Eligible   bool
	Value      float64
	Violations []Violation

	// SeasonPoints and LastDuty feed the tie-break ordering
	SeasonPoints int
	LastDuty     time.Time

	// order preserves the candidate list position for the final tie-break
	order int
}

// ScoreCandidate converts evaluator output plus fairness state into a
// single comparable score. Any hard violation disqualifies the candidate.
func ScoreCandidate(team db.Team, match db.Match, violations []Violation, ctx *Context, order int) CandidateScore {
	tp := ctx.Points[team.ID]
	score := CandidateScore{
		Team:         team,
		Violations:   violations,
		SeasonPoints: tp.Total,
		LastDuty:     tp.LastAssignment,
		order:        order,
	}

	if HasHardViolation(violations) {
		score.Eligible = false
		score.Value = IneligibleScore
		return score
	}

	value := team.CapacityFactor * 100
	for _, v := range violations {
		value += float64(v.ScoreDelta)
	}

	// Load balancing: every assignment already held this season costs 10
	value -= float64(tp.Count) * 10

	matchPoints := ctx.PointsForMatch(match)
	impact := fairness.FairnessImpact(team.ID, matchPoints, ctx.Points)
	value += fairness.RecommendationPriority(team.ID, ctx.Points, impact)

	score.Eligible = true
	score.Value = value
	return score
}

// Better reports whether a should rank ahead of b. Ties on score fall back
// to fewer season points, then the longer idle time since last duty, then
// the original candidate order, so identical inputs always rank
// identically.
func Better(a, b CandidateScore) bool {
	if a.Value != b.Value {
		return a.Value > b.Value
	}
	if a.SeasonPoints != b.SeasonPoints {
		return a.SeasonPoints < b.SeasonPoints
	}
	if !a.LastDuty.Equal(b.LastDuty) {
		return a.LastDuty.Before(b.LastDuty)
	}
	return a.order < b.order
}
