package assigner

import (
	"sort"
	"time"

	"github.com/jakechorley/juryplan/pkg/core/fairness"
	"github.com/jakechorley/juryplan/pkg/db"
)

// Severity classifies the impact of a constraint evaluation result
type Severity string

const (
	// SeverityHard marks a violation that makes the candidate ineligible
	SeverityHard Severity = "HARD"

	// SeveritySoft marks a violation that lowers the candidate's score
	SeveritySoft Severity = "SOFT"

	// SeverityBonus marks a positive result that raises the candidate's score
	SeverityBonus Severity = "BONUS"
)

// Violation is the structured result of one constraint check. Messages are
// not embedded; presentation layers render Code plus Params.
type Violation struct {
	Code       string
	Severity   Severity
	ScoreDelta int
	Params     map[string]any
}

// HardViolation builds a disqualifying violation for the given definition
func HardViolation(def db.ConstraintDefinition, params map[string]any) *Violation {
	return &Violation{Code: def.Code, Severity: SeverityHard, Params: params}
}

// SoftViolation builds a penalized violation worth -penaltyPoints*weight
func SoftViolation(def db.ConstraintDefinition, params map[string]any) *Violation {
	return ScaledSoftViolation(def, 1, params)
}

// ScaledSoftViolation builds a penalized violation scaled by count
func ScaledSoftViolation(def db.ConstraintDefinition, count int, params map[string]any) *Violation {
	return &Violation{
		Code:       def.Code,
		Severity:   SeveritySoft,
		ScoreDelta: -int(float64(def.PenaltyPoints)*def.Weight) * count,
		Params:     params,
	}
}

// BonusResult builds a positive result worth +penaltyPoints*weight
func BonusResult(def db.ConstraintDefinition, params map[string]any) *Violation {
	return &Violation{
		Code:       def.Code,
		Severity:   SeverityBonus,
		ScoreDelta: int(float64(def.PenaltyPoints) * def.Weight),
		Params:     params,
	}
}

// Context is the working set threaded through a batch run. It carries the
// candidate teams, the full season of matches and every assignment the
// engine knows about, including ones committed earlier in the same batch,
// so later evaluations see earlier commitments.
type Context struct {
	Teams []db.Team

	// Matches is the whole data set sorted by start time ascending
	Matches []db.Match

	// Assignments is the current working set
	Assignments []db.Assignment

	// Points is the per-team fairness aggregate over the working set
	Points map[string]fairness.TeamPoints

	tracker            *fairness.Tracker
	matchByID          map[string]db.Match
	assignmentsByTeam  map[string][]db.Assignment
	assignmentsByMatch map[string][]db.Assignment
}

// NewContext builds a working set from a consistent snapshot of store data.
// Matches are re-sorted chronologically to fix the processing order.
func NewContext(teams []db.Team, matches []db.Match, assignments []db.Assignment, tracker *fairness.Tracker) *Context {
	if tracker == nil {
		tracker = fairness.NewTracker("")
	}

	sorted := make([]db.Match, len(matches))
	copy(sorted, matches)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	c := &Context{
		Teams:       teams,
		Matches:     sorted,
		Assignments: append([]db.Assignment(nil), assignments...),
		tracker:     tracker,
	}
	c.reindex()
	return c
}

func (c *Context) reindex() {
	c.matchByID = make(map[string]db.Match, len(c.Matches))
	for _, m := range c.Matches {
		c.matchByID[m.ID] = m
	}
	c.assignmentsByTeam = make(map[string][]db.Assignment)
	c.assignmentsByMatch = make(map[string][]db.Assignment)
	for _, a := range c.Assignments {
		c.assignmentsByTeam[a.TeamID] = append(c.assignmentsByTeam[a.TeamID], a)
		c.assignmentsByMatch[a.MatchID] = append(c.assignmentsByMatch[a.MatchID], a)
	}
	c.Points = c.tracker.TeamPoints(c.Teams, c.Matches, c.Assignments, "")
}

// MatchByID looks up a match in the working set
func (c *Context) MatchByID(id string) (db.Match, bool) {
	m, ok := c.matchByID[id]
	return m, ok
}

// AssignmentsForTeam returns the team's assignments in the working set
func (c *Context) AssignmentsForTeam(teamID string) []db.Assignment {
	return c.assignmentsByTeam[teamID]
}

// HasAssignment reports whether the match already holds any assignment
func (c *Context) HasAssignment(matchID string) bool {
	return len(c.assignmentsByMatch[matchID]) > 0
}

// PointsForMatch returns the fairness point value of a match in this season
func (c *Context) PointsForMatch(match db.Match) int {
	return fairness.PointsForMatch(match, c.Matches)
}

// TeamDutyMatches resolves the team's assignments to matches whose start
// time falls in [from, to), sorted chronologically.
func (c *Context) TeamDutyMatches(teamID string, from, to time.Time) []db.Match {
	var result []db.Match
	for _, a := range c.assignmentsByTeam[teamID] {
		m, ok := c.matchByID[a.MatchID]
		if !ok {
			continue
		}
		if m.StartTime.Before(from) || !m.StartTime.Before(to) {
			continue
		}
		result = append(result, m)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].StartTime.Before(result[j].StartTime)
	})
	return result
}

// TeamDutyMatchesOn resolves the team's duty matches on one calendar day
func (c *Context) TeamDutyMatchesOn(teamID string, day time.Time) []db.Match {
	start := StartOfDay(day)
	return c.TeamDutyMatches(teamID, start, start.AddDate(0, 0, 1))
}

// Add commits an assignment to the working set and refreshes the fairness
// aggregates so subsequent evaluations see it.
func (c *Context) Add(a db.Assignment) {
	c.Assignments = append(c.Assignments, a)
	c.assignmentsByTeam[a.TeamID] = append(c.assignmentsByTeam[a.TeamID], a)
	c.assignmentsByMatch[a.MatchID] = append(c.assignmentsByMatch[a.MatchID], a)
	c.Points = c.tracker.TeamPoints(c.Teams, c.Matches, c.Assignments, "")
}

// Remove takes an assignment out of the working set. Used by re-validation
// to audit an assignment as if it had not been made yet.
func (c *Context) Remove(assignmentID string) {
	kept := c.Assignments[:0]
	for _, a := range c.Assignments {
		if a.ID != assignmentID {
			kept = append(kept, a)
		}
	}
	c.Assignments = kept
	c.reindex()
}
