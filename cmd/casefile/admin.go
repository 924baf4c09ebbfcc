package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/phrazzld/casefile/internal/config"
	"github.com/phrazzld/casefile/internal/platform/dynamodb"
	"github.com/phrazzld/casefile/internal/platform/memory"
	"github.com/phrazzld/casefile/internal/platform/postgres"
	"github.com/phrazzld/casefile/internal/platform/storage"
	"github.com/phrazzld/casefile/internal/service"
	"github.com/spf13/cobra"
)

// errMemoryBackend is returned by storage commands that have nothing to do
// for the in-memory backend.
var errMemoryBackend = errors.New("the memory backend keeps no persistent storage")

func (c *cli) seedCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "seed",
		GroupID: adminGroup.ID,
		Short:   "Store the demo cases in the configured backend",
		Long: `Stores the three demo cases. The memory backend loads them on startup
when storage.seed is set, so seeding only applies to postgres and dynamodb.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.Storage.Backend == config.BackendMemory {
				return errMemoryBackend
			}

			return c.withBackend(cmd.Context(), func(backend *storage.Backend) error {
				// Oldest first, so backends that stamp their own creation time keep
				// the demo ordering.
				for _, mc := range memory.SeedCases(time.Now()) {
					saved, err := backend.Cases.Save(cmd.Context(), mc.Draft(), mc.AuthorID)
					if err != nil {
						return fmt.Errorf("failed to seed %q: %w", mc.Title, err)
					}
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %s\n", saved.ID, saved.Title)
				}
				return nil
			})
		},
	}
}

func (c *cli) migrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "migrate <up|down|status|version>",
		GroupID: adminGroup.ID,
		Short:   "Manage the storage schema",
		Long: `Runs the embedded goose migrations for postgres. For dynamodb, up creates
the case table and its published index when they are missing.`,
		ValidArgs: []string{postgres.MigrateUp, postgres.MigrateDown, postgres.MigrateStatus, postgres.MigrateVersion},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			command := args[0]

			switch c.cfg.Storage.Backend {
			case config.BackendPostgres:
				db, err := postgres.Open(cmd.Context(), c.cfg.Database)
				if err != nil {
					return err
				}
				defer func() { _ = db.Close() }()
				return postgres.Migrate(cmd.Context(), db, command, c.logger)

			case config.BackendDynamoDB:
				if command != postgres.MigrateUp {
					return fmt.Errorf("dynamodb supports only migrate %s", postgres.MigrateUp)
				}
				client, err := dynamodb.NewClient(cmd.Context(), c.cfg.DynamoDB)
				if err != nil {
					return err
				}
				created, err := dynamodb.EnsureTable(cmd.Context(), client,
					c.cfg.DynamoDB.Table, c.cfg.DynamoDB.PublishedIndex, c.logger)
				if err != nil {
					return err
				}
				if created {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "created table %s\n", c.cfg.DynamoDB.Table)
				} else {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "table %s already exists\n", c.cfg.DynamoDB.Table)
				}
				return nil

			default:
				return errMemoryBackend
			}
		},
	}
}

func (c *cli) keygenCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "keygen",
		GroupID: adminGroup.ID,
		Short:   "Generate an identity key pair",
		Args:    cobra.NoArgs,
		// Key generation needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			pair, err := service.GenerateKeyPair()
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), pair)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "public key:  %s\nprivate key: %s\n", pair.PublicKey, pair.PrivateKey)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the key pair as JSON")
	return cmd
}
