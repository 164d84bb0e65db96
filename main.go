package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"taskmaster/config"
	"taskmaster/connection"
	"taskmaster/logging"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "taskmaster",
	Short: "Task tracking API for a master and their collaborators",
	Long: `taskmaster serves the task, time log and feedback API backed by SQLite,
PostgreSQL or MySQL. Without a subcommand it runs the HTTP server.`,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the tables and the master account, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if err := connection.InitDatabase(cmd.Context(), cfg, logger); err != nil {
			return err
		}
		logger.Info("database ready")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (yaml, json or toml); environment variables take precedence")
	rootCmd.AddCommand(serveCmd, initDBCmd)
}

func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.New(os.Stdout, cfg.Logging.Level)
	slog.SetDefault(logger)
	gin.SetMode(cfg.Server.GinMode)
	return cfg, logger, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	return connection.StartServer(cmd.Context(), cfg, logger)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
