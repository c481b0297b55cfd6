package cmd

import (
	"context"
	"fmt"
	"os"

	"stocktrack/internal/core/logger"
	"stocktrack/internal/database"
	"stocktrack/internal/database/migration"
	"stocktrack/internal/database/seed"
	"stocktrack/internal/repository"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run schema migrations manually.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbURL := os.Getenv("DATABASE_URL")
		migrationDir, _ := cmd.Flags().GetString("dir")

		err := migration.Migrate(
			dbURL,
			fmt.Sprintf("file://%s", migrationDir),
			logger.NewLogger(),
		)
		if err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

var SeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample inventory into an empty database.",
	RunE: func(_ *cobra.Command, _ []string) error {
		log := logger.NewLogger()

		db, err := database.NewPostgresConnection(os.Getenv("DATABASE_URL"))
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		repo := repository.NewRepository(db)
		defer repo.Close()

		if err := seed.Seed(repo.GoquDBWrapper, log); err != nil {
			log.Error("Database seed failed", zap.Error(err))
			return fmt.Errorf("seed database: %w", err)
		}

		return nil
	},
}

func Execute(ctx context.Context) {
	rootCmd := &cobra.Command{
		Use:   "stocktrack",
		Short: "Inventory tracking service",
	}
	MigrateCmd.Flags().String("dir", "migrations", "Directory containing the migration files")
	rootCmd.AddCommand(MigrateCmd)
	rootCmd.AddCommand(SeedCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
