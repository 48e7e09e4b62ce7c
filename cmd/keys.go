// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/lti-service/pkg/keys"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage the tool signing key",
}

var generateKeyCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PEM encoded RSA signing key",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, encoded, err := keys.GeneratePEM()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			_, err = cmd.OutOrStdout().Write(encoded)
			return err
		}

		if err := os.WriteFile(out, encoded, 0o600); err != nil {
			return fmt.Errorf("failed to write key: %w", err)
		}

		fmt.Printf("Signing key written to %s\n", out)
		return nil
	},
}

var jwksCmd = &cobra.Command{
	Use:   "jwks",
	Short: "Print the public key set of a signing key",
	RunE: func(cmd *cobra.Command, args []string) error {
		keyFile, _ := cmd.Flags().GetString("key-file")

		tracer, monitor, logger := cliDependencies()
		manager := keys.NewManager(keys.Config{KeyFile: keyFile}, tracer, monitor, logger)

		set, err := manager.GetPublicKeySet(context.Background())
		if err != nil {
			return fmt.Errorf("failed to load key: %w", err)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(set)
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(generateKeyCmd)
	keysCmd.AddCommand(jwksCmd)

	generateKeyCmd.Flags().StringP("out", "o", "", "File to write the key to, stdout when empty")
	jwksCmd.Flags().String("key-file", "", "PEM encoded RSA private key")
	_ = jwksCmd.MarkFlagRequired("key-file")
}
