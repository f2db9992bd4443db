// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the research-hub server CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-hub/internal/secrets"
	"github.com/pdiddy/research-hub/internal/upstream"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets secrets.Store

// rootCmd is the base command for the research-hub CLI.
var rootCmd = &cobra.Command{
	Use:   "research-hub",
	Short: "Local server for the Research Hub paper feed",
	Long: `research-hub serves the Research Hub frontend and proxies its Semantic
Scholar paper-search calls. Browsers cannot reach the API directly (CORS,
and TLS inspection on some corporate machines), so the frontend issues GET
requests against this server instead and renders whatever JSON comes back.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./research-hub.yaml or ~/.config/research-hub/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("research-hub")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "research-hub"))
		}
	}

	viper.SetDefault("server.addr", "127.0.0.1:8000")
	viper.SetDefault("server.web_dir", "web")
	viper.SetDefault("upstream.timeout", upstream.DefaultTimeout.String())
	viper.SetDefault("upstream.user_agent", upstream.DefaultUserAgent)
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("RESEARCH_HUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// upstreamTimeout parses the configured timeout, falling back to the default
// on a malformed value rather than refusing to start.
func upstreamTimeout() time.Duration {
	d, err := time.ParseDuration(viper.GetString("upstream.timeout"))
	if err != nil || d <= 0 {
		return upstream.DefaultTimeout
	}
	return d
}

func main() {
	if err := godotenv.Load(); err == nil {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
