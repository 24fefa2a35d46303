package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/phishtrack/internal/config"
	"github.com/example/phishtrack/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the config file and database",
		Long: `Write the default configuration to ~/.phishtrack/config.yaml (unless
one already exists) and create the database with the current schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultPath()
			if err != nil {
				return err
			}

			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := config.Save(path, config.Default()); err != nil {
					return err
				}
				fmt.Printf("✓ Wrote config: %s\n", path)
			} else {
				fmt.Printf("Config already exists: %s\n", path)
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			database, err := db.Open(cfg.DatabasePath)
			if err != nil {
				return err
			}
			defer database.Close()
			fmt.Printf("✓ Database ready: %s\n", cfg.DatabasePath)

			if seed {
				if err := db.SeedFixtures(database); err != nil {
					return fmt.Errorf("failed to seed fixtures: %w", err)
				}
				fmt.Println("✓ Seeded development fixtures")
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "populate development fixtures")

	return cmd
}
