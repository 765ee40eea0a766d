package rules

import (
	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// CodePointsAboveAverage is the constraint code for the point-threshold rule
const CodePointsAboveAverage = "points_above_average"

// pointsAboveAverageMargin is how far a team's cumulative points may sit
// above the average of all other teams before the penalty triggers
const pointsAboveAverageMargin = 4

// PointsAboveAverageRule penalizes teams whose cumulative duty points run
// well ahead of everyone else's average.
type PointsAboveAverageRule struct{}

func NewPointsAboveAverageRule() *PointsAboveAverageRule {
	return &PointsAboveAverageRule{}
}

func (r *PointsAboveAverageRule) Code() string {
	return CodePointsAboveAverage
}

func (r *PointsAboveAverageRule) Evaluate(def db.ConstraintDefinition, match db.Match, team db.Team, ctx *assigner.Context) *assigner.Violation {
	teamTotal := ctx.Points[team.ID].Total

	otherTotal := 0
	otherCount := 0
	for id, tp := range ctx.Points {
		if id == team.ID {
			continue
		}
		otherTotal += tp.Total
		otherCount++
	}
	if otherCount == 0 {
		return nil
	}

	average := float64(otherTotal) / float64(otherCount)
	if float64(teamTotal) > average+pointsAboveAverageMargin {
		return assigner.SoftViolation(def, map[string]any{
			"teamId":        team.ID,
			"teamPoints":    teamTotal,
			"othersAverage": average,
		})
	}
	return nil
}
