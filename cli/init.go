package cli

import (
	"fmt"

	"corkboard/app/config"
	"corkboard/app/models"
	"corkboard/app/storage"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize empty data files",
	Long:  "Creates posts.json and comments.json with empty envelopes in the configured data directory. Existing files are left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store := storage.NewStore(cfg.Storage.DataDir)
		locks := storage.NewLockTable()

		posts := storage.NewCollection[*models.Post](store, locks, "posts.json", "posts")
		comments := storage.NewCollection[*models.Comment](store, locks, "comments.json", "comments")

		// LoadAll self-heals a missing file with an empty envelope.
		if _, err := posts.LoadAll(); err != nil {
			return err
		}
		if _, err := comments.LoadAll(); err != nil {
			return err
		}

		fmt.Printf("Initialized data files in %s\n", store.Dir())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
