package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/console"
	"github.com/mcpflow/mcpflow/internal/flow"
	"github.com/mcpflow/mcpflow/internal/gateway"
)

var (
	cfgPath    string
	gatewayURL string
	repoList   string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "insights",
		Short: "Aggregate development patterns across repositories into a dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&gatewayURL, "gateway-url", "", "gateway base URL, overrides config")
	rootCmd.Flags().StringVar(&repoList, "repos", "", "comma separated repositories to scan, overrides config")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if gatewayURL != "" {
		cfg.Gateway.URL = gatewayURL
	}
	if repos := splitRepos(repoList); len(repos) > 0 {
		cfg.Workspace.Repositories = repos
	}

	logger := newLogger(verbose)
	client, err := gateway.New(cfg.Gateway, logger)
	if err != nil {
		return err
	}

	deps := flow.Deps{
		Gateway: client,
		Out:     console.New(os.Stdout),
		Log:     logger,
		Config:  cfg,
		Pace:    400 * time.Millisecond,
	}

	if rep := flow.Insights(ctx, deps); !rep.Success {
		os.Exit(1)
	}
	return nil
}

func splitRepos(list string) []string {
	var repos []string
	for _, part := range strings.Split(list, ",") {
		if name := strings.TrimSpace(part); name != "" {
			repos = append(repos, name)
		}
	}
	return repos
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
