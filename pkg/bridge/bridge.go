// Package bridge serializes catalog, match and team state to a
// solver-neutral document and maps a solver's solution back onto
// assignments. It is a pass-through adapter: no optimization happens here.
package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jakechorley/juryplan/pkg/db"
)

// ExportVersion identifies the document layout for external solvers
const ExportVersion = 1

// ErrMissingAssignments is returned for solution documents without an
// assignments key. Such documents are rejected before any mutation.
var ErrMissingAssignments = errors.New("solution document has no assignments key")

// Period bounds the scheduling window a document covers
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// TeamDoc is the solver-facing view of a team
type TeamDoc struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	CapacityFactor float64 `json:"capacityFactor"`
	DedicatedTo    string  `json:"dedicatedTo,omitempty"`
}

// MatchDoc is the solver-facing view of a match
type MatchDoc struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	HomeTeamID  string    `json:"homeTeamId"`
	AwayTeamID  string    `json:"awayTeamId"`
	Competition string    `json:"competition"`
	Location    string    `json:"location,omitempty"`
	Locked      bool      `json:"locked,omitempty"`
}

// ConstraintDoc is the solver-facing view of a constraint definition
type ConstraintDoc struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	Kind          string  `json:"kind"`
	Weight        float64 `json:"weight"`
	PenaltyPoints int     `json:"penaltyPoints"`
}

// ExportDocument is the versioned document handed to an external solver
type ExportDocument struct {
	Version           int                `json:"version"`
	GeneratedAt       time.Time          `json:"generatedAt"`
	Period            Period             `json:"period"`
	Teams             []TeamDoc          `json:"teams"`
	Matches           []MatchDoc         `json:"matches"`
	Constraints       []ConstraintDoc    `json:"constraints"`
	WeightMultipliers map[string]float64 `json:"weightMultipliers,omitempty"`
}

// SolutionAssignment is one assignment decided by the external solver
type SolutionAssignment struct {
	MatchID string `json:"matchId"`
	TeamID  string `json:"teamId"`
	Points  int    `json:"points"`
}

// SolutionDocument is the solver's output applied back onto the schedule
type SolutionDocument struct {
	Assignments          []SolutionAssignment `json:"assignments"`
	Period               Period               `json:"period"`
	OptimizationScore    float64              `json:"optimizationScore"`
	ConstraintsSatisfied int                  `json:"constraintsSatisfied"`
	TotalConstraints     int                  `json:"totalConstraints"`
	SolverTimeSeconds    float64              `json:"solverTimeSeconds"`
}

// SatisfactionRate returns the fraction of constraints the solver reports
// as satisfied, in [0, 1].
func (d *SolutionDocument) SatisfactionRate() float64 {
	if d.TotalConstraints == 0 {
		return 0
	}
	return float64(d.ConstraintsSatisfied) / float64(d.TotalConstraints)
}

// BuildExport assembles an export document from store snapshots
func BuildExport(teams []db.Team, matches []db.Match, constraints []db.ConstraintDefinition, multipliers map[string]float64, period Period, now time.Time) *ExportDocument {
	doc := &ExportDocument{
		Version:           ExportVersion,
		GeneratedAt:       now,
		Period:            period,
		WeightMultipliers: multipliers,
	}
	for _, t := range teams {
		doc.Teams = append(doc.Teams, TeamDoc{
			ID:             t.ID,
			Name:           t.Name,
			CapacityFactor: t.CapacityFactor,
			DedicatedTo:    t.DedicatedTo,
		})
	}
	for _, m := range matches {
		doc.Matches = append(doc.Matches, MatchDoc{
			ID:          m.ID,
			StartTime:   m.StartTime,
			HomeTeamID:  m.HomeTeamID,
			AwayTeamID:  m.AwayTeamID,
			Competition: m.Competition,
			Location:    m.Location,
			Locked:      m.Locked,
		})
	}
	for _, c := range constraints {
		doc.Constraints = append(doc.Constraints, ConstraintDoc{
			Code:          c.Code,
			Name:          c.Name,
			Kind:          string(c.Kind),
			Weight:        c.Weight,
			PenaltyPoints: c.PenaltyPoints,
		})
	}
	return doc
}

// Marshal renders the document pretty-printed for hand inspection
func (d *ExportDocument) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal export document: %w", err)
	}
	return data, nil
}

// ParseSolution decodes and validates a solver solution document. A
// document without an assignments key is malformed and rejected.
func ParseSolution(data []byte) (*SolutionDocument, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse solution document: %w", err)
	}
	if _, ok := raw["assignments"]; !ok {
		return nil, ErrMissingAssignments
	}

	var doc SolutionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse solution document: %w", err)
	}
	return &doc, nil
}
