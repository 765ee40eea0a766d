package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/pkg/core/assigner"
	"github.com/jakechorley/juryplan/pkg/db"
)

// RecommendStore defines the database operations needed for recommendations
type RecommendStore interface {
	SnapshotStore
	GetMatch(ctx context.Context, id string) (db.Match, error)
}

// RecommendResult lists the ranked candidates for one match
type RecommendResult struct {
	Match      db.Match
	Candidates []assigner.CandidateScore
}

// Recommend ranks the top candidate teams for a single match without
// mutating any state.
func Recommend(
	ctx context.Context,
	database RecommendStore,
	logger *zap.Logger,
	matchID string,
	topN int,
	staticTeamID string,
) (*RecommendResult, error) {
	match, err := database.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match %s: %w", matchID, err)
	}

	engine, working, err := loadEngine(ctx, database, staticTeamID)
	if err != nil {
		return nil, err
	}

	candidates := engine.Recommend(working, match, topN)
	logger.Debug("Ranked candidates",
		zap.String("match_id", matchID),
		zap.Int("count", len(candidates)))

	return &RecommendResult{Match: match, Candidates: candidates}, nil
}
