package cli

import (
	"context"
	"fmt"
	"log"

	"eduquest-service/internal/catalog"
	"eduquest-service/internal/config"
	pgstore "eduquest-service/internal/infra/postgres"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
)

// NewSeedCmd bootstraps the built-in quest catalog into an empty quest table.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the quest catalog if the quest table is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			return runSeed(cmd.Context(), cfg)
		},
	}
}

func runSeed(ctx context.Context, cfg config.Config) error {
	if cfg.Postgres.URL == "" {
		return fmt.Errorf("postgres url not configured")
	}

	pool, err := pgxpool.Connect(ctx, cfg.Postgres.URL)
	if err != nil {
		return err
	}
	defer pool.Close()

	inserted, err := pgstore.NewQuestStore(pool).SeedIfEmpty(ctx, catalog.Quests())
	if err != nil {
		return err
	}
	if inserted == 0 {
		log.Printf("quest catalog already seeded")
	} else {
		log.Printf("seeded %d quests", inserted)
	}
	return nil
}
