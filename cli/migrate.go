package cli

import (
	"fmt"

	"corkboard/app/config"
	"corkboard/app/storage"
	"corkboard/legacy"

	"github.com/spf13/cobra"
)

var migrateFrom string

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import records from a legacy Badger database",
	Long:  "Reads posts and comments from the old Badger-backed store and writes them to the JSON data files, replacing any existing content.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store := storage.NewStore(cfg.Storage.DataDir)
		posts, comments, err := legacy.Import(migrateFrom, store, storage.NewLockTable())
		if err != nil {
			return err
		}

		fmt.Printf("Imported %d posts and %d comments into %s\n", posts, comments, store.Dir())
		return nil
	},
}

func init() {
	migrateCmd.Flags().StringVar(&migrateFrom, "from", "data/badger", "path to the legacy Badger database")
	rootCmd.AddCommand(migrateCmd)
}
