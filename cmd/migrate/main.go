// Command migrate applies or inspects the embedded database migrations.
//
// Usage:
//
//	migrate up
//	migrate status
//
// Requires the DATABASE_DSN environment variable (or --dsn).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/studytrack-backend/internal/adapter/postgres"
	"github.com/heartmarshall/studytrack-backend/internal/app"
	"github.com/heartmarshall/studytrack-backend/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dsn string

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Apply or inspect StudyTrack database migrations",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dsn, "dsn", os.Getenv("DATABASE_DSN"), "PostgreSQL connection string")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), dsn, func(ctx context.Context, m *postgres.Migrator) error {
					logger := app.NewLogger(config.LogConfig{Level: "info", Format: "text"})
					return m.Up(ctx, logger)
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), dsn, func(ctx context.Context, m *postgres.Migrator) error {
					statuses, err := m.Status(ctx)
					if err != nil {
						return err
					}
					tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
					fmt.Fprintln(tw, "VERSION\tFILE\tAPPLIED")
					for _, s := range statuses {
						fmt.Fprintf(tw, "%d\t%s\t%t\n", s.Version, s.File, s.Applied)
					}
					return tw.Flush()
				})
			},
		},
	)
	return root
}

func withMigrator(ctx context.Context, dsn string, fn func(context.Context, *postgres.Migrator) error) error {
	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN or --dsn is required")
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, config.DatabaseConfig{
		DSN:             dsn,
		MaxConns:        2,
		MaxConnLifetime: time.Hour,
		MaxConnIdleTime: 30 * time.Minute,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck

	return fn(ctx, m)
}
