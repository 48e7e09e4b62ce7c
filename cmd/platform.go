// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/internal/storage"
	"github.com/canonical/lti-service/internal/types"
)

var platformCmd = &cobra.Command{
	Use:   "platform",
	Short: "Manage platform registrations",
}

var registerPlatformCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a platform, from flags or from a platforms file",
	Long: `Register platforms from flags or from a platforms file.
Issuers already registered are left alone unless --update is passed, in which case
their client id, endpoints, deployment ids and auth config are replaced.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registrations, err := registrationsFromFlags(cmd)
		if err != nil {
			return err
		}

		update, _ := cmd.Flags().GetBool("update")

		dbClient, s, err := getStorage(cmd)
		if err != nil {
			return err
		}
		defer dbClient.Close()

		return registerPlatforms(context.Background(), dbClient, s, registrations, update, cmd.OutOrStdout())
	},
}

type txRunner interface {
	WithTx(context.Context, func(context.Context) error) error
}

type platformStore interface {
	CreatePlatform(ctx context.Context, p *types.Platform) (*types.Platform, error)
	GetPlatformByIssuer(ctx context.Context, issuer string) (*types.Platform, error)
	UpdatePlatformConfig(ctx context.Context, p *types.Platform) (*types.Platform, error)
}

// registerPlatforms applies all registrations in a single transaction.
func registerPlatforms(ctx context.Context, tx txRunner, s platformStore, registrations []config.PlatformRegistration, update bool, out io.Writer) error {
	return tx.WithTx(ctx, func(ctx context.Context) error {
		for _, r := range registrations {
			candidate := r.Platform()

			existing, err := s.GetPlatformByIssuer(ctx, r.Issuer)
			switch {
			case errors.Is(err, storage.ErrNotFound):
				p, err := s.CreatePlatform(ctx, candidate)
				if err != nil {
					return fmt.Errorf("failed to register platform %s: %w", r.Issuer, err)
				}
				fmt.Fprintf(out, "Platform registered: %s (ID: %s)\n", p.Issuer, p.ID)
			case err != nil:
				return fmt.Errorf("failed to look up platform %s: %w", r.Issuer, err)
			case existing.SameConfig(candidate):
				fmt.Fprintf(out, "Platform unchanged: %s\n", r.Issuer)
			case !update:
				fmt.Fprintf(out, "Platform already registered with other settings, rerun with --update: %s\n", r.Issuer)
			default:
				if _, err := s.UpdatePlatformConfig(ctx, candidate); err != nil {
					return fmt.Errorf("failed to update platform %s: %w", r.Issuer, err)
				}
				fmt.Fprintf(out, "Platform updated: %s (ID: %s)\n", r.Issuer, existing.ID)
			}
		}

		return nil
	})
}

var listPlatformsCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered platforms",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbClient, s, err := getStorage(cmd)
		if err != nil {
			return err
		}
		defer dbClient.Close()

		platforms, err := s.ListPlatforms(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list platforms: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tISSUER\tNAME\tCLIENT_ID\tDEPLOYMENTS\tCREATED_AT")
		for _, p := range platforms {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", p.ID, p.Issuer, p.Name, p.ClientID, strings.Join(p.DeploymentIDs, ","), p.CreatedAt)
		}
		w.Flush()
		return nil
	},
}

func registrationsFromFlags(cmd *cobra.Command) ([]config.PlatformRegistration, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		return config.LoadPlatforms(file)
	}

	r := config.PlatformRegistration{}
	r.Issuer, _ = cmd.Flags().GetString("issuer")
	r.Name, _ = cmd.Flags().GetString("name")
	r.ClientID, _ = cmd.Flags().GetString("client-id")
	r.AuthLoginURL, _ = cmd.Flags().GetString("auth-login-url")
	r.AuthTokenURL, _ = cmd.Flags().GetString("auth-token-url")
	r.KeySetURL, _ = cmd.Flags().GetString("key-set-url")
	r.DeploymentIDs, _ = cmd.Flags().GetStringSlice("deployment-id")

	if err := validator.New().Struct(&r); err != nil {
		return nil, fmt.Errorf("invalid platform registration: %w", err)
	}

	return []config.PlatformRegistration{r}, nil
}

func init() {
	rootCmd.AddCommand(platformCmd)
	platformCmd.AddCommand(registerPlatformCmd)
	platformCmd.AddCommand(listPlatformsCmd)

	platformCmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string")

	registerPlatformCmd.Flags().StringP("file", "f", "", "YAML file with a platforms list")
	registerPlatformCmd.Flags().Bool("update", false, "Replace the settings of platforms already registered")
	registerPlatformCmd.Flags().String("issuer", "", "Platform issuer")
	registerPlatformCmd.Flags().String("name", "", "Display name")
	registerPlatformCmd.Flags().String("client-id", "", "Client ID assigned to the tool by the platform")
	registerPlatformCmd.Flags().String("auth-login-url", "", "Platform OIDC authorization endpoint")
	registerPlatformCmd.Flags().String("auth-token-url", "", "Platform OAuth2 token endpoint")
	registerPlatformCmd.Flags().String("key-set-url", "", "Platform JWKS endpoint")
	registerPlatformCmd.Flags().StringSlice("deployment-id", []string{}, "Accepted deployment ids (comma-separated)")
}
