package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/console"
	"github.com/mcpflow/mcpflow/internal/flow"
	"github.com/mcpflow/mcpflow/internal/gateway"
)

var (
	cfgPath       string
	gatewayURL    string
	repoPath      string
	verbose       bool
	assumeYes     bool
	noInteractive bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "autopr",
		Short: "Analyze the working tree and open pull requests through the MCP gateway",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "path to configuration file")
	rootCmd.Flags().StringVar(&gatewayURL, "gateway-url", "", "gateway base URL, overrides config")
	rootCmd.Flags().StringVar(&repoPath, "repo", "", "working directory to analyze")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "create every recommended PR without asking")
	rootCmd.Flags().BoolVar(&noInteractive, "no-interactive", false, "disable prompts")

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
	if repoPath != "" {
		cfg.Workspace.RepoPath = repoPath
	}

	logger := newLogger(verbose)
	client, err := gateway.New(cfg.Gateway, logger)
	if err != nil {
		return err
	}

	out := console.New(os.Stdout)
	deps := flow.Deps{
		Gateway: client,
		Out:     out,
		Log:     logger,
		Config:  cfg,
		Pace:    400 * time.Millisecond,
	}
	if !assumeYes && !noInteractive {
		deps.Confirm = flow.TerminalConfirm(os.Stdin, out)
	}

	if rep := flow.AutoPR(ctx, deps); !rep.Success {
		os.Exit(1)
	}
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
