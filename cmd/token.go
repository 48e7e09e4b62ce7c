// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/internal/config"
	"github.com/canonical/lti-service/pkg/keys"
	"github.com/canonical/lti-service/pkg/launch"
	"github.com/canonical/lti-service/pkg/lti"
	"github.com/canonical/lti-service/pkg/ltiservices"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get a platform service access token using a signed client assertion",
	RunE: func(cmd *cobra.Command, args []string) error {
		issuer, _ := cmd.Flags().GetString("issuer")
		keyFile, _ := cmd.Flags().GetString("key-file")
		platformsFile, _ := cmd.Flags().GetString("platforms-file")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		registrations, err := config.LoadPlatforms(platformsFile)
		if err != nil {
			return err
		}

		tracer, monitor, logger := cliDependencies()

		// stored registrations are only consulted when a dsn is given
		var registry *launch.Registry
		if dsn, _ := cmd.Flags().GetString("dsn"); dsn != "" {
			dbClient, s, err := getStorage(cmd)
			if err != nil {
				return err
			}
			defer dbClient.Close()
			registry = launch.NewRegistry(s, registrations, tracer)
		} else {
			registry = launch.NewRegistry(nil, registrations, tracer)
		}

		manager := keys.NewManager(keys.Config{KeyFile: keyFile}, tracer, monitor, logger)
		client := ltiservices.NewClient(registry, manager, timeout, tracer, monitor, logger)

		token, err := client.GetServiceAccessToken(context.Background(), &lti.LaunchClaims{Issuer: issuer}, scopes)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		fmt.Println(token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("issuer", "", "Issuer of the registered platform")
	tokenCmd.Flags().String("key-file", "", "PEM encoded RSA private key signing the client assertion")
	tokenCmd.Flags().String("platforms-file", "", "YAML file with static platform registrations")
	tokenCmd.Flags().String("dsn", "", "PostgreSQL DSN, enables stored registrations")
	tokenCmd.Flags().StringSlice("scopes", []string{lti.ScopeScore}, "Scopes (comma-separated)")
	tokenCmd.Flags().Duration("timeout", 10*time.Second, "Token endpoint timeout")

	_ = tokenCmd.MarkFlagRequired("issuer")
	_ = tokenCmd.MarkFlagRequired("key-file")
}
