package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/internal/config"
)

func TestSeedSeasonExpandsRecurrence(t *testing.T) {
	store := &mockStore{}
	seeds := []config.SeasonSeed{
		{RRule: "FREQ=WEEKLY;BYDAY=SA", Competition: "league", Location: "Sporthal Noord"},
	}

	result, err := SeedSeason(context.Background(), store, zap.NewNop(), seeds,
		when("2024-03-01 00:00"), when("2024-03-31 23:59"))
	require.NoError(t, err)

	// Saturdays in March 2024: the 2nd, 9th, 16th, 23rd and 30th
	require.Len(t, result.Matches, 5)
	assert.Len(t, store.insertedMatches, 5)
	for _, m := range result.Matches {
		assert.NotEmpty(t, m.ID)
		assert.Equal(t, "league", m.Competition)
		assert.Equal(t, "Sporthal Noord", m.Location)
		assert.Empty(t, m.HomeTeamID)
	}
}

func TestSeedSeasonRejectsInvalidRule(t *testing.T) {
	store := &mockStore{}
	seeds := []config.SeasonSeed{{RRule: "FREQ=NOPE"}}

	_, err := SeedSeason(context.Background(), store, zap.NewNop(), seeds,
		when("2024-03-01 00:00"), when("2024-03-31 23:59"))
	assert.Error(t, err)
	assert.Empty(t, store.insertedMatches)
}

func TestSeedSeasonRequiresSeeds(t *testing.T) {
	_, err := SeedSeason(context.Background(), &mockStore{}, zap.NewNop(), nil,
		when("2024-03-01 00:00"), when("2024-03-31 23:59"))
	assert.Error(t, err)
}

func TestSeedSeasonRequiresOccurrences(t *testing.T) {
	store := &mockStore{}
	seeds := []config.SeasonSeed{{RRule: "FREQ=WEEKLY;BYDAY=SA"}}

	// Window too narrow to contain a Saturday
	_, err := SeedSeason(context.Background(), store, zap.NewNop(), seeds,
		when("2024-03-04 00:00"), when("2024-03-05 00:00"))
	assert.Error(t, err)
	assert.Empty(t, store.insertedMatches)
}
