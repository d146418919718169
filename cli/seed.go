package cli

import (
	"fmt"

	"corkboard/app/config"
	"corkboard/app/storage"
	"corkboard/seed"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill the data files with a sample dataset",
	Long:  "Generates sample posts and comments and writes them to the JSON data files, replacing any existing content.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store := storage.NewStore(cfg.Storage.DataDir)
		posts, comments, err := seed.Run(store, storage.NewLockTable())
		if err != nil {
			return err
		}

		fmt.Printf("Created %d posts and %d comments in %s\n", posts, comments, store.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
