// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Config resolves the configuration exactly as serve would (config file,
environment, .secrets/, defaults) and prints the result. The API key value
is redacted; only its presence is shown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		if cfg.Upstream.APIKey != "" {
			cfg.Upstream.APIKey = "(set)"
		}

		data, err := yaml.Marshal(&cfg)
		if err != nil {
			return fmt.Errorf("marshaling config: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func init() {
	configCmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8000)")
	configCmd.Flags().String("web-dir", "", "directory to serve the frontend from (default ./web)")

	rootCmd.AddCommand(configCmd)
}
