package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "juryplan_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/juryplan
staticTeamId: static
maxAssignments: 25
recommendCount: 5
seasonSeeds:
  - rrule: FREQ=WEEKLY;BYDAY=SA
    competition: league
    location: Sporthal Noord
weightMultipliers:
  own_match: 2.0
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/juryplan", cfg.DatabaseURL)
	assert.Equal(t, "static", cfg.StaticTeamID)
	assert.Equal(t, 25, cfg.MaxAssignments)
	assert.Equal(t, 5, cfg.RecommendCount)
	require.Len(t, cfg.SeasonSeeds, 1)
	assert.Equal(t, "FREQ=WEEKLY;BYDAY=SA", cfg.SeasonSeeds[0].RRule)
	assert.Equal(t, 2.0, cfg.WeightMultipliers["own_match"])
}

func TestLoadFromPathDefaults(t *testing.T) {
	path := writeConfig(t, "databaseURL: postgres://localhost:5432/juryplan\n")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Empty(t, cfg.StaticTeamID)
	assert.Zero(t, cfg.MaxAssignments)
	assert.Empty(t, cfg.SeasonSeeds)
}

func TestLoadFromPathRequiresDatabaseURL(t *testing.T) {
	path := writeConfig(t, "staticTeamId: static\n")
	t.Setenv("DATABASE_URL", "")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPathEnvOverride(t *testing.T) {
	path := writeConfig(t, "databaseURL: postgres://file-value\n")
	t.Setenv("DATABASE_URL", "postgres://env-value")

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://env-value", cfg.DatabaseURL)
}

func TestLoadFromPathRejectsInvalidRRule(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/juryplan
seasonSeeds:
  - rrule: FREQ=SOMETIMES
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "seasonSeeds[0]")
}

func TestLoadFromPathRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "databaseURL: [unclosed\n")

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
