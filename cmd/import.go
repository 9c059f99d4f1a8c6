package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skyops/fieldcoord/config"
	"github.com/skyops/fieldcoord/core/store"
	memstore "github.com/skyops/fieldcoord/infra/store/memory"
	sqlstore "github.com/skyops/fieldcoord/infra/store/sqlite"
)

var importSeed string

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a fleet seed file into the configured sqlite store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cfg.Store.Driver != "sqlite" {
			return fmt.Errorf("import requires the sqlite store driver, got %s", cfg.Store.Driver)
		}
		seed, err := memstore.NewFromFile(importSeed)
		if err != nil {
			return err
		}
		db, err := sqlstore.New(cfg.Store.Path)
		if err != nil {
			return err
		}
		defer db.Close()

		total := 0
		for _, c := range []store.Collection{store.Operators, store.Equipment, store.Missions} {
			records, err := seed.Snapshot(c)
			if err != nil {
				return err
			}
			for _, r := range records {
				if err := db.Insert(c, r); err != nil {
					return fmt.Errorf("insert into %s: %w", c, err)
				}
			}
			total += len(records)
		}
		fmt.Printf("imported %d records into %s\n", total, cfg.Store.Path)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importSeed, "seed", "fleet.yaml", "seed file to import")
	rootCmd.AddCommand(importCmd)
}
