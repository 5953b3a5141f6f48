package main

import (
	"context"
	"fmt"
	"time"

	"talent-match/internal/database/migration"
	"talent-match/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateDir string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	Long:  "Apply the embedded V<n>__name.sql migrations, or the ones in --dir when given.",
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migrateDir, "dir", "", "Read migrations from this directory instead of the embedded set")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c, log, err := openContainer()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
	defer cancel()

	r := migration.Runner{FS: migrations.FS, Logger: log}
	if migrateDir != "" {
		r = migration.Runner{Dir: migrateDir, Logger: log}
	}
	res, err := r.Run(ctx, c.DB.SQLDB())
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("migrations complete", zap.Int("applied", len(res.Applied)), zap.Int("skipped", res.Skipped))
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s), %d already up to date\n", len(res.Applied), res.Skipped)
	return nil
}
