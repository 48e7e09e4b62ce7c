// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|check] [version]",
	Short: "Run database migrations",
	Long: `Apply or inspect the schema of the platforms, launch sessions and grades tables.
Without arguments all pending migrations are applied. "down" rolls back one migration,
or down to the given version. "check" fails while migrations are pending.`,
	Args: validateMigrateArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		version := int64(-1)
		if len(args) > 1 {
			version, _ = strconv.ParseInt(args[1], 10, 64)
		}

		dsn, _ := cmd.Flags().GetString("dsn")
		if dsn == "" {
			dsn = os.Getenv("DSN")
		}
		if dsn == "" {
			return fmt.Errorf("--dsn or the DSN environment variable is required")
		}

		format, _ := cmd.Flags().GetString("format")

		report, err := migrate(cmd.Context(), dsn, command, version)
		if err != nil {
			return err
		}

		return report.write(cmd.OutOrStdout(), format)
	},
}

func init() {
	migrateCmd.Flags().String("dsn", "", "PostgreSQL DSN, defaults to the DSN environment variable")
	migrateCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	rootCmd.AddCommand(migrateCmd)
}

func validateMigrateArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(0, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch args[0] {
	case "up", "down", "status", "check":
	default:
		return fmt.Errorf("unknown migrate command %q", args[0])
	}

	if len(args) == 2 {
		if args[0] != "down" {
			return fmt.Errorf("only down takes a target version")
		}
		if v, err := strconv.ParseInt(args[1], 10, 64); err != nil || v < 0 {
			return fmt.Errorf("invalid target version %q", args[1])
		}
	}

	return nil
}

type migrationStep struct {
	Version  int64  `json:"version"`
	Source   string `json:"source"`
	Duration string `json:"duration"`
}

type migrationState struct {
	Version   int64  `json:"version"`
	Source    string `json:"source"`
	AppliedAt string `json:"applied_at,omitempty"`
}

// migrationReport is the outcome of a migrate run, printed as text or JSON.
type migrationReport struct {
	Command string           `json:"command"`
	Version int64            `json:"version"`
	Pending bool             `json:"pending"`
	Applied []migrationStep  `json:"applied,omitempty"`
	States  []migrationState `json:"states,omitempty"`
}

func (r *migrationReport) addResults(results []*goose.MigrationResult) {
	for _, res := range results {
		if res == nil || res.Source == nil {
			continue
		}
		r.Applied = append(r.Applied, migrationStep{
			Version:  res.Source.Version,
			Source:   res.Source.Path,
			Duration: res.Duration.String(),
		})
	}
}

func (r *migrationReport) write(out io.Writer, format string) error {
	if format == "json" {
		return json.NewEncoder(out).Encode(r)
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	switch r.Command {
	case "status":
		fmt.Fprintln(w, "VERSION\tAPPLIED_AT\tMIGRATION")
		for _, s := range r.States {
			appliedAt := s.AppliedAt
			if appliedAt == "" {
				appliedAt = "pending"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\n", s.Version, appliedAt, s.Source)
		}
	case "check":
		fmt.Fprintf(w, "Schema version %d, pending migrations: %t\n", r.Version, r.Pending)
	default:
		for _, s := range r.Applied {
			fmt.Fprintf(w, "%s %s\t%s\n", r.Command, s.Source, s.Duration)
		}
		fmt.Fprintf(w, "Schema version %d\n", r.Version)
	}

	return w.Flush()
}

func migrate(ctx context.Context, dsn, command string, version int64) (*migrationReport, error) {
	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DSN: %w", err)
	}

	db := stdlib.OpenDB(*config)
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	provider, err := migrations.NewProvider(db, goose.WithLogger(goose.NopLogger()))
	if err != nil {
		return nil, err
	}

	report := &migrationReport{Command: command}

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return nil, err
		}
		report.addResults(results)
	case "down":
		var results []*goose.MigrationResult
		if version < 0 {
			res, err := provider.Down(ctx)
			if err != nil {
				return nil, err
			}
			results = append(results, res)
		} else {
			results, err = provider.DownTo(ctx, version)
			if err != nil {
				return nil, err
			}
		}
		report.addResults(results)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return nil, err
		}
		for _, s := range statuses {
			state := migrationState{Version: s.Source.Version, Source: s.Source.Path}
			if s.State == goose.StateApplied {
				state.AppliedAt = s.AppliedAt.Format(time.RFC3339)
			}
			report.States = append(report.States, state)
		}
	}

	if report.Pending, err = provider.HasPending(ctx); err != nil {
		return nil, fmt.Errorf("failed to check pending migrations: %w", err)
	}
	if report.Version, err = provider.GetDBVersion(ctx); err != nil {
		return nil, fmt.Errorf("failed to read schema version: %w", err)
	}

	if command == "check" && report.Pending {
		return report, fmt.Errorf("migrations are pending, schema version %d", report.Version)
	}

	return report, nil
}
