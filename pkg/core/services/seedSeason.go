package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/internal/config"
	"github.com/jakechorley/juryplan/pkg/db"
)

// SeedSeasonStore defines the database operations needed for seeding
type SeedSeasonStore interface {
	InsertMatches(ctx context.Context, matches []db.Match) error
}

// SeedSeasonResult reports what was generated
type SeedSeasonResult struct {
	Matches []db.Match
}

// SeedSeason expands the configured recurrence rules into placeholder
// match slots between from and until and inserts them. Home and away
// teams are filled in later when the fixture list firms up.
func SeedSeason(
	ctx context.Context,
	database SeedSeasonStore,
	logger *zap.Logger,
	seeds []config.SeasonSeed,
	from, until time.Time,
) (*SeedSeasonResult, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no season seeds configured")
	}

	result := &SeedSeasonResult{}
	for i, seed := range seeds {
		rule, err := rrule.StrToRRule(seed.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in seasonSeeds[%d]: %w", i, err)
		}
		rule.DTStart(from)

		for _, start := range rule.Between(from, until, true) {
			result.Matches = append(result.Matches, db.Match{
				ID:          uuid.NewString(),
				StartTime:   start,
				Competition: seed.Competition,
				Location:    seed.Location,
			})
		}
	}

	if len(result.Matches) == 0 {
		return nil, fmt.Errorf("season seeds produced no matches between %s and %s",
			from.Format("2006-01-02"), until.Format("2006-01-02"))
	}

	if err := database.InsertMatches(ctx, result.Matches); err != nil {
		return nil, fmt.Errorf("failed to insert seeded matches: %w", err)
	}

	logger.Info("Season seeded", zap.Int("matches", len(result.Matches)))
	return result, nil
}
