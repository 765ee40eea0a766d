// Package fairness computes cumulative duty points per team and derives
// the balancing metrics used to rank assignment candidates.
package fairness

import (
	"time"

	"github.com/jakechorley/juryplan/pkg/db"
)

const (
	// RegularMatchPoints is the duty point value of an ordinary match
	RegularMatchPoints = 10

	// BoundaryMatchPoints is the duty point value of the chronologically
	// first and last match of the data set
	BoundaryMatchPoints = 15
)

// AssignmentPoints is one entry in a team's point breakdown
type AssignmentPoints struct {
	AssignmentID string
	MatchID      string
	Points       int
	MatchStart   time.Time
}

// TeamPoints aggregates a team's duty history
type TeamPoints struct {
	TeamID         string
	Total          int
	Count          int
	LastAssignment time.Time
	Breakdown      []AssignmentPoints
}

// Metrics summarizes how evenly duty points are spread across teams
type Metrics struct {
	Min           int
	Max           int
	Spread        int
	AveragePoints float64
	FairnessScore float64
}

// Tracker derives fairness state from assignment history.
// The zero value is usable; StaticTeamID is optional.
type Tracker struct {
	// StaticTeamID names a placeholder team that is excluded from
	// season-wide aggregates when no explicit team filter is given
	StaticTeamID string
}

// NewTracker creates a Tracker that ignores the given placeholder team
func NewTracker(staticTeamID string) *Tracker {
	return &Tracker{StaticTeamID: staticTeamID}
}

// matchValue returns the point multiplier for a competition. "GO" matches
// were once planned to carry a different value; they currently score the
// same as regular competition matches.
func matchValue(competition string) int {
	_ = competition
	return 1
}

// PointsForMatch returns the duty point value of a match given the full
// season ordered by start time. The first and last match of the season are
// worth more because they bracket setup and teardown.
func PointsForMatch(match db.Match, allMatchesSortedByTime []db.Match) int {
	points := RegularMatchPoints
	if len(allMatchesSortedByTime) > 0 {
		first := allMatchesSortedByTime[0]
		last := allMatchesSortedByTime[len(allMatchesSortedByTime)-1]
		if match.ID == first.ID || match.ID == last.ID {
			points = BoundaryMatchPoints
		}
	}
	return points * matchValue(match.Competition)
}

// TeamPoints sums duty points over every assignment per team. Teams without
// assignments appear with zero totals. If teamID is non-empty only that
// team is reported; otherwise the placeholder team is excluded.
func (t *Tracker) TeamPoints(teams []db.Team, matches []db.Match, assignments []db.Assignment, teamID string) map[string]TeamPoints {
	matchByID := make(map[string]db.Match, len(matches))
	for _, m := range matches {
		matchByID[m.ID] = m
	}

	result := make(map[string]TeamPoints)
	for _, team := range teams {
		if teamID != "" && team.ID != teamID {
			continue
		}
		if teamID == "" && t.StaticTeamID != "" && team.ID == t.StaticTeamID {
			continue
		}
		result[team.ID] = TeamPoints{TeamID: team.ID}
	}

	for _, a := range assignments {
		tp, ok := result[a.TeamID]
		if !ok {
			continue
		}
		match, ok := matchByID[a.MatchID]
		if !ok {
			continue
		}
		points := PointsForMatch(match, matches)
		tp.Total += points
		tp.Count++
		if match.StartTime.After(tp.LastAssignment) {
			tp.LastAssignment = match.StartTime
		}
		tp.Breakdown = append(tp.Breakdown, AssignmentPoints{
			AssignmentID: a.ID,
			MatchID:      a.MatchID,
			Points:       points,
			MatchStart:   match.StartTime,
		})
		result[a.TeamID] = tp
	}

	return result
}

// FairnessMetrics computes the spread statistics over a points map
func FairnessMetrics(points map[string]TeamPoints) Metrics {
	if len(points) == 0 {
		return Metrics{FairnessScore: 100}
	}

	first := true
	var m Metrics
	total := 0
	for _, tp := range points {
		if first {
			m.Min = tp.Total
			m.Max = tp.Total
			first = false
		}
		if tp.Total < m.Min {
			m.Min = tp.Total
		}
		if tp.Total > m.Max {
			m.Max = tp.Total
		}
		total += tp.Total
	}
	m.Spread = m.Max - m.Min
	m.AveragePoints = float64(total) / float64(len(points))
	m.FairnessScore = clamp(0, 100, 100-2*float64(m.Spread))
	return m
}

// FairnessImpact estimates how a candidate assignment would change the
// spread: the current spread over the other teams minus the projected
// spread once the candidate receives matchPoints. Positive means fairness
// improves.
func FairnessImpact(teamID string, matchPoints int, points map[string]TeamPoints) float64 {
	others := make(map[string]TeamPoints, len(points))
	for id, tp := range points {
		if id != teamID {
			others[id] = tp
		}
	}
	currentSpread := FairnessMetrics(others).Spread

	projected := make(map[string]TeamPoints, len(points))
	for id, tp := range points {
		projected[id] = tp
	}
	tp := projected[teamID]
	tp.TeamID = teamID
	tp.Total += matchPoints
	projected[teamID] = tp
	projectedSpread := FairnessMetrics(projected).Spread

	return float64(currentSpread - projectedSpread)
}

// RecommendationPriority scores how urgently a team should receive the next
// assignment: under-loaded teams and fairness-improving assignments score
// higher, overloaded teams are pushed down.
func RecommendationPriority(teamID string, points map[string]TeamPoints, fairnessImpact float64) float64 {
	average := FairnessMetrics(points).AveragePoints
	teamTotal := float64(points[teamID].Total)

	priority := max(0, average-teamTotal)
	priority += max(0, fairnessImpact*10)
	priority -= max(0, (teamTotal-average)*2)
	return priority
}

func clamp(lo, hi, v float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
