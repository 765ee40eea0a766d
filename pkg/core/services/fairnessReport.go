package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/core/fairness"
	"github.com/jakechorley/juryplan/pkg/db"
)

// FairnessStore defines the database operations needed for the report
type FairnessStore interface {
	GetMatches(ctx context.Context) ([]db.Match, error)
	GetEligibleTeams(ctx context.Context) ([]db.Team, error)
	GetAssignments(ctx context.Context) ([]db.Assignment, error)
}

// FairnessReport is the season-wide duty point distribution
type FairnessReport struct {
	// Teams is ordered by total points descending, name ascending on ties
	Teams   []fairness.TeamPoints
	Metrics fairness.Metrics
}

// ReportFairness aggregates duty points per team and the spread metrics.
// When teamID is non-empty only that team's breakdown is reported.
func ReportFairness(
	ctx context.Context,
	database FairnessStore,
	logger *zap.Logger,
	staticTeamID string,
	teamID string,
) (*FairnessReport, error) {
	matches, err := database.GetMatches(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch matches: %w", err)
	}
	teams, err := database.GetEligibleTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}
	assignments, err := database.GetAssignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	tracker := fairness.NewTracker(staticTeamID)
	points := tracker.TeamPoints(teams, matches, assignments, teamID)

	nameByID := make(map[string]string, len(teams))
	for _, t := range teams {
		nameByID[t.ID] = t.Name
	}

	report := &FairnessReport{Metrics: fairness.FairnessMetrics(points)}
	for _, tp := range points {
		report.Teams = append(report.Teams, tp)
	}
	sort.SliceStable(report.Teams, func(i, j int) bool {
		if report.Teams[i].Total != report.Teams[j].Total {
			return report.Teams[i].Total > report.Teams[j].Total
		}
		return nameByID[report.Teams[i].TeamID] < nameByID[report.Teams[j].TeamID]
	})

	logger.Debug("Fairness report built",
		zap.Int("teams", len(report.Teams)),
		zap.Int("spread", report.Metrics.Spread))
	return report, nil
}
