package main

import (
	"context"
	"fmt"

	"tonotes/config"

	"github.com/spf13/cobra"
)

var (
	purgeOwner string
	purgeID    string
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Permanently delete one note",
	Long:  `Purge removes a note from the store for good, whether or not it was soft-deleted. The HTTP API never does this.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fatal("Invalid configuration", err)
		}

		ctx := context.Background()
		a, err := newApp(ctx, cfg)
		if err != nil {
			fatal("Failed to initialize", err)
		}
		defer a.Close()

		if err := a.notes.HardDeleteNote(ctx, purgeID, purgeOwner); err != nil {
			a.Close()
			fatal("Error purging note", err)
		}
		fmt.Printf("Note purged: %s\n", purgeID)
	},
}

func init() {
	purgeCmd.Flags().StringVar(&purgeOwner, "owner", "", "Owner of the note")
	purgeCmd.Flags().StringVar(&purgeID, "id", "", "Note id")
	purgeCmd.MarkFlagRequired("owner")
	purgeCmd.MarkFlagRequired("id")
	rootCmd.AddCommand(purgeCmd)
}
