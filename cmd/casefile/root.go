package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/casefile/internal/config"
	"github.com/phrazzld/casefile/internal/events"
	"github.com/phrazzld/casefile/internal/platform/logger"
	"github.com/phrazzld/casefile/internal/platform/storage"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/spf13/cobra"
)

var (
	casesGroup = &cobra.Group{ID: "cases", Title: "Case commands"}
	adminGroup = &cobra.Group{ID: "admin", Title: "Storage and identity commands"}
)

// cli carries the state shared by all subcommands. The loaders are fields so
// tests can run commands against an in-memory backend.
type cli struct {
	configPath string
	logLevel   string

	loadConfig  func(path string) (*config.Config, error)
	openBackend func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage.Backend, error)

	cfg    *config.Config
	logger *slog.Logger
}

func newCLI() *cli {
	return &cli{
		loadConfig:  loadConfig,
		openBackend: storage.Open,
	}
}

// loadConfig reads path when given, otherwise the default config.yaml lookup
// and CASEFILE_ environment variables.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

func (c *cli) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "casefile",
		Short:        "Operate a Casefile case store",
		Long:         `Command line utilities for listing, solving and seeding mystery cases and for storage maintenance.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.loadConfig(c.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			c.cfg = cfg
			c.logger = logger.New(cmd.ErrOrStderr(), c.logLevel)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a config file")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "level of diagnostics written to stderr")

	root.AddGroup(casesGroup, adminGroup)
	root.AddCommand(
		c.listCommand(),
		c.showCommand(),
		c.createCommand(),
		c.solveCommand(),
		c.seedCommand(),
		c.migrateCommand(),
		c.keygenCommand(),
	)
	return root
}

// withBackend opens the configured backend for the duration of fn.
func (c *cli) withBackend(ctx context.Context, fn func(*storage.Backend) error) error {
	backend, err := c.openBackend(ctx, c.cfg, c.logger)
	if err != nil {
		return fmt.Errorf("failed to open %s backend: %w", c.cfg.Storage.Backend, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			c.logger.Error("failed to close storage backend", "error", err)
		}
	}()
	return fn(backend)
}

// withCases runs fn with a case service over the configured backend. Domain
// events go to the audit log like they do in the server.
func (c *cli) withCases(ctx context.Context, fn func(service.CaseService) error) error {
	return c.withBackend(ctx, func(backend *storage.Backend) error {
		emitter := events.NewInMemoryEventEmitter(c.logger)
		emitter.RegisterHandler(events.NewAuditLogHandler(c.logger))

		cases, err := service.NewCaseService(backend.Cases, emitter, c.logger)
		if err != nil {
			return fmt.Errorf("failed to create case service: %w", err)
		}
		return fn(cases)
	})
}
