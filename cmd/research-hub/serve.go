// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/research-hub/internal/secrets"
	"github.com/pdiddy/research-hub/internal/server"
	"github.com/pdiddy/research-hub/internal/upstream"
	"github.com/pdiddy/research-hub/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the frontend and the paper-search proxy",
	Long: `Serve starts the Research Hub HTTP server: static frontend files from the
web directory, a /health endpoint, and the /api/papers proxy that forwards
search queries to Semantic Scholar with a 10-second deadline and permissive
CORS headers on every response.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveConfig(cmd)
		logger := newLogger()

		srv := server.New(cfg, logger, upstream.NewClient(cfg.Upstream))

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Run() }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case s := <-sig:
			logger.WithField("signal", s.String()).Info("shutting down")
			return srv.Shutdown()
		}
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default 127.0.0.1:8000)")
	serveCmd.Flags().String("web-dir", "", "directory to serve the frontend from (default ./web)")

	rootCmd.AddCommand(serveCmd)
}

// resolveConfig merges flags over viper (config file + environment) and
// fills the API key from .secrets/ when no explicit value is set.
func resolveConfig(cmd *cobra.Command) types.Config {
	cfg := types.Config{
		Server: types.ServerConfig{
			Addr:   viper.GetString("server.addr"),
			WebDir: viper.GetString("server.web_dir"),
		},
		Upstream: types.UpstreamConfig{
			Timeout:   upstreamTimeout(),
			UserAgent: viper.GetString("upstream.user_agent"),
			APIKey:    loadedSecrets.Get(secrets.SemanticScholarKey, viper.GetString("upstream.api_key")),
		},
	}

	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if webDir, _ := cmd.Flags().GetString("web-dir"); webDir != "" {
		cfg.Server.WebDir = webDir
	}

	return cfg
}

// newLogger builds the process logger at the configured level.
func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if level, err := logrus.ParseLevel(viper.GetString("log.level")); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
