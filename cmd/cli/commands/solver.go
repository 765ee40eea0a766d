package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jakechorley/juryplan/pkg/bridge"
	"github.com/jakechorley/juryplan/pkg/core/services"
)

// SolverCmd creates the solver command group for the external optimizer
// exchange.
func SolverCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solver",
		Short: "Exchange schedule data with an external solver",
	}
	cmd.AddCommand(solverExportCmd(app))
	cmd.AddCommand(solverImportCmd(app))
	cmd.AddCommand(solverRunsCmd(app))
	return cmd
}

func solverExportCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <from> <until> <file>",
		Short: "Write the solver export document to a file",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := time.Parse("2006-01-02", args[0])
			if err != nil {
				return fmt.Errorf("invalid from date: %w", err)
			}
			until, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("invalid until date: %w", err)
			}

			data, err := services.ExportForSolver(app.Ctx, app.Database, app.Logger,
				bridge.Period{Start: from, End: until}, app.Cfg.WeightMultipliers)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			if err := os.WriteFile(args[2], data, 0644); err != nil {
				return fmt.Errorf("failed to write export file: %w", err)
			}
			fmt.Printf("✓ Export written to %s\n", args[2])
			return nil
		},
	}
	return cmd
}

func solverImportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Apply a solver solution document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read solution file: %w", err)
			}

			result, err := services.ImportSolution(app.Ctx, app.Database, app.Logger, data)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Printf("\n✓ Applied %d assignments\n", result.Applied)
			fmt.Printf("Score:        %.2f\n", result.Run.OptimizationScore)
			fmt.Printf("Satisfied:    %d/%d constraints\n", result.Run.ConstraintsSatisfied, result.Run.TotalConstraints)
			fmt.Printf("Solver time:  %.1fs\n\n", result.Run.SolverTimeSeconds)
			return nil
		},
	}
}

func solverRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List recorded solver runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			runs, err := app.Database.GetSolverRuns(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list solver runs: %w", err)
			}

			fmt.Printf("\n🧮 Solver Runs\n\n")
			for _, run := range runs {
				fmt.Printf("  %s  %s → %s  score %.2f  %d/%d satisfied  %.1fs\n",
					run.ImportedAt.Format("2006-01-02 15:04"),
					run.PeriodStart.Format("2006-01-02"),
					run.PeriodEnd.Format("2006-01-02"),
					run.OptimizationScore,
					run.ConstraintsSatisfied, run.TotalConstraints,
					run.SolverTimeSeconds)
			}
			fmt.Println()
			return nil
		},
	}
}
