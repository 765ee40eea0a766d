package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"
)

// SeasonSeed defines a recurring fixture slot used to generate a season of
// match placeholders.
type SeasonSeed struct {
	RRule       string `yaml:"rrule" validate:"required"`
	Competition string `yaml:"competition,omitempty"`
	Location    string `yaml:"location,omitempty"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// StaticTeamID names a placeholder team excluded from season-wide
	// fairness aggregates
	StaticTeamID string `yaml:"staticTeamId,omitempty"`

	// MaxAssignments bounds how many matches one auto-assign run commits
	// (0 = unbounded)
	MaxAssignments int `yaml:"maxAssignments,omitempty" validate:"omitempty,min=1"`

	// RecommendCount is the default number of candidates listed per match
	RecommendCount int `yaml:"recommendCount,omitempty" validate:"omitempty,min=1"`

	// SeasonSeeds drive the seed-season command
	SeasonSeeds []SeasonSeed `yaml:"seasonSeeds,omitempty" validate:"dive"`

	// WeightMultipliers are passed through to external solvers per
	// constraint code
	WeightMultipliers map[string]float64 `yaml:"weightMultipliers,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from juryplan_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory. DATABASE_URL in the environment overrides the
// file value.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if url := os.Getenv("DATABASE_URL"); url != "" {
		cfg.DatabaseURL = url
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, seed := range cfg.SeasonSeeds {
		if _, err := rrule.StrToRRule(seed.RRule); err != nil {
			return fmt.Errorf("invalid rrule in seasonSeeds[%d]: %w", i, err)
		}
	}

	return nil
}

// findConfigFile searches for juryplan_config.yaml in the current
// directory and the user's home directory
func findConfigFile() (string, error) {
	configFileName := "juryplan_config.yaml"

	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}

	homePath := filepath.Join(home, configFileName)
	if _, err := os.Stat(homePath); err == nil {
		return homePath, nil
	}

	return "", fmt.Errorf("%s not found in current or home directory", configFileName)
}
