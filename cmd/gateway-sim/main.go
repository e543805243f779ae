package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	daemon "github.com/sevlyar/go-daemon"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/mcpflow/mcpflow/internal/config"
	"github.com/mcpflow/mcpflow/internal/simulator"
)

var (
	cfgPath     string
	listenAddr  string
	daemonMode  bool
	mintSubject string
	verbose     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gateway-sim",
		Short: "Self-contained MCP gateway for running the demos offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			if mintSubject != "" {
				return mintToken()
			}
			if daemonMode {
				cntxt := &daemon.Context{
					PidFileName: "gateway-sim.pid",
					PidFilePerm: 0644,
				}
				child, err := cntxt.Reborn()
				if err != nil {
					return err
				}
				if child != nil {
					return nil
				}
				defer cntxt.Release()
			}
			return run(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to configuration file")
	rootCmd.PersistentFlags().StringVar(&listenAddr, "listen", "", "listen address, overrides config")
	rootCmd.PersistentFlags().BoolVar(&daemonMode, "daemon", false, "run in background")
	rootCmd.PersistentFlags().StringVar(&mintSubject, "mint-token", "", "print a signed bearer token for this subject and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

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
	if listenAddr != "" {
		cfg.Simulator.Listen = listenAddr
	}

	srv, err := simulator.New(cfg.Simulator, newLogger(cfg.Simulator.LogFile, verbose))
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}

func mintToken() error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Simulator.Auth.Mode != "jwt" || cfg.Simulator.Auth.JWTSecret == "" {
		return fmt.Errorf("minting requires auth mode jwt with a signing secret configured")
	}
	token, err := simulator.MintToken([]byte(cfg.Simulator.Auth.JWTSecret), mintSubject, 24*time.Hour)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func newLogger(logFile string, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	var w io.Writer = os.Stdout
	if logFile != "" {
		w = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50,
			MaxAge:     7,
			MaxBackups: 3,
			Compress:   true,
		})
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}
