package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/juryplan/cmd/cli/commands"
	"github.com/jakechorley/juryplan/internal/config"
	"github.com/jakechorley/juryplan/pkg/core/catalog"
	"github.com/jakechorley/juryplan/pkg/postgres"
	"github.com/jakechorley/juryplan/pkg/utils/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; the config file and environment take over from here
	_ = godotenv.Load()

	logger, err := logging.InitLogger("juryplan")
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.RunMigrations(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// The catalog purges deprecated codes and seeds defaults on first run
	if err := catalog.New(database).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize constraint catalog: %w", err)
	}

	app := &commands.AppContext{
		Cfg:      cfg,
		Database: database,
		Logger:   logger,
		Ctx:      ctx,
	}

	rootCmd := &cobra.Command{
		Use:           "juryplan",
		Short:         "Jury duty assignment for the club's match schedule",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.AutoAssignCmd(app))
	rootCmd.AddCommand(commands.RecommendCmd(app))
	rootCmd.AddCommand(commands.RevalidateCmd(app))
	rootCmd.AddCommand(commands.UnassignCmd(app))
	rootCmd.AddCommand(commands.FairnessCmd(app))
	rootCmd.AddCommand(commands.ConstraintsCmd(app))
	rootCmd.AddCommand(commands.MatchesCmd(app))
	rootCmd.AddCommand(commands.TeamsCmd(app))
	rootCmd.AddCommand(commands.SeedSeasonCmd(app))
	rootCmd.AddCommand(commands.SolverCmd(app))

	if err := rootCmd.Execute(); err != nil {
		logger.Error("Command failed", zap.Error(err))
		return err
	}
	return nil
}
