package fairness

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/juryplan/pkg/db"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", s)
	if err != nil {
		panic(err)
	}
	return t
}

func season() []db.Match {
	return []db.Match{
		{ID: "m1", StartTime: day("2024-02-03 10:00")},
		{ID: "m2", StartTime: day("2024-02-10 10:00")},
		{ID: "m3", StartTime: day("2024-02-17 10:00")},
		{ID: "m4", StartTime: day("2024-02-24 10:00")},
	}
}

func TestPointsForMatch_BoundaryMatches(t *testing.T) {
	matches := season()

	assert.Equal(t, BoundaryMatchPoints, PointsForMatch(matches[0], matches))
	assert.Equal(t, RegularMatchPoints, PointsForMatch(matches[1], matches))
	assert.Equal(t, RegularMatchPoints, PointsForMatch(matches[2], matches))
	assert.Equal(t, BoundaryMatchPoints, PointsForMatch(matches[3], matches))
}

func TestPointsForMatch_TwoMatchSeason(t *testing.T) {
	// With exactly two matches each is both first and last
	matches := season()[:2]

	assert.Equal(t, BoundaryMatchPoints, PointsForMatch(matches[0], matches))
	assert.Equal(t, BoundaryMatchPoints, PointsForMatch(matches[1], matches))
}

func TestPointsForMatch_GOCompetitionScoresTheSame(t *testing.T) {
	matches := season()
	matches[1].Competition = "GO"

	assert.Equal(t, RegularMatchPoints, PointsForMatch(matches[1], matches))
}

func TestTeamPoints_SumsAssignments(t *testing.T) {
	matches := season()
	teams := []db.Team{{ID: "t1"}, {ID: "t2"}}
	assignments := []db.Assignment{
		{ID: "a1", MatchID: "m1", TeamID: "t1"},
		{ID: "a2", MatchID: "m2", TeamID: "t1"},
		{ID: "a3", MatchID: "m3", TeamID: "t2"},
	}

	tracker := NewTracker("")
	points := tracker.TeamPoints(teams, matches, assignments, "")

	assert.Equal(t, 25, points["t1"].Total)
	assert.Equal(t, 2, points["t1"].Count)
	assert.Equal(t, day("2024-02-10 10:00"), points["t1"].LastAssignment)
	assert.Len(t, points["t1"].Breakdown, 2)

	assert.Equal(t, 10, points["t2"].Total)
	assert.Equal(t, 1, points["t2"].Count)
}

func TestTeamPoints_TeamWithoutAssignmentsAppears(t *testing.T) {
	teams := []db.Team{{ID: "t1"}}
	tracker := NewTracker("")

	points := tracker.TeamPoints(teams, season(), nil, "")

	assert.Contains(t, points, "t1")
	assert.Equal(t, 0, points["t1"].Total)
}

func TestTeamPoints_StaticTeamExcludedFromAggregates(t *testing.T) {
	matches := season()
	teams := []db.Team{{ID: "t1"}, {ID: "static"}}
	assignments := []db.Assignment{
		{ID: "a1", MatchID: "m1", TeamID: "static"},
	}

	tracker := NewTracker("static")

	points := tracker.TeamPoints(teams, matches, assignments, "")
	assert.NotContains(t, points, "static")

	// An explicit filter still reports the placeholder team
	filtered := tracker.TeamPoints(teams, matches, assignments, "static")
	assert.Equal(t, 15, filtered["static"].Total)
}

func TestFairnessMetrics(t *testing.T) {
	points := map[string]TeamPoints{
		"t1": {TeamID: "t1", Total: 30},
		"t2": {TeamID: "t2", Total: 10},
		"t3": {TeamID: "t3", Total: 20},
	}

	m := FairnessMetrics(points)

	assert.Equal(t, 10, m.Min)
	assert.Equal(t, 30, m.Max)
	assert.Equal(t, 20, m.Spread)
	assert.InDelta(t, 20.0, m.AveragePoints, 0.001)
	assert.InDelta(t, 60.0, m.FairnessScore, 0.001)
}

func TestFairnessMetrics_ScoreClampedAtZero(t *testing.T) {
	points := map[string]TeamPoints{
		"t1": {TeamID: "t1", Total: 100},
		"t2": {TeamID: "t2", Total: 0},
	}

	assert.Equal(t, 0.0, FairnessMetrics(points).FairnessScore)
}

func TestFairnessImpact_PrefersUnderloadedTeam(t *testing.T) {
	points := map[string]TeamPoints{
		"t1": {TeamID: "t1", Total: 0},
		"t2": {TeamID: "t2", Total: 10},
		"t3": {TeamID: "t3", Total: 20},
	}

	// Filling the gap from below keeps the spread where it was
	assert.Equal(t, 0.0, FairnessImpact("t1", 10, points))
	// Loading the busiest team widens it
	assert.Equal(t, -20.0, FairnessImpact("t3", 10, points))
}

func TestRecommendationPriority(t *testing.T) {
	points := map[string]TeamPoints{
		"low":  {TeamID: "low", Total: 0},
		"mid":  {TeamID: "mid", Total: 15},
		"high": {TeamID: "high", Total: 30},
	}

	low := RecommendationPriority("low", points, 0)
	high := RecommendationPriority("high", points, 0)

	assert.Greater(t, low, high)
	// Overloaded teams are penalized twice as hard as the shortfall reward
	assert.InDelta(t, 15.0, low, 0.001)
	assert.InDelta(t, -30.0, high, 0.001)
}

func TestRecommendationPriority_FairnessImpactBoost(t *testing.T) {
	points := map[string]TeamPoints{
		"t1": {TeamID: "t1", Total: 10},
		"t2": {TeamID: "t2", Total: 10},
	}

	without := RecommendationPriority("t1", points, 0)
	with := RecommendationPriority("t1", points, 1.5)

	assert.InDelta(t, 15.0, with-without, 0.001)
}
