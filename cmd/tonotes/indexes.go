package main

import (
	"context"
	"fmt"

	"tonotes/config"
	"tonotes/repository"

	"github.com/spf13/cobra"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create the MongoDB indexes of the notes collection",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		db := config.LoadDatabaseConfig()

		client, err := connectMongo(ctx, db)
		if err != nil {
			fatal("Error connecting to MongoDB", err)
		}
		defer client.Disconnect(ctx)

		if err := repository.SetupIndexes(ctx, client.Database(db.DatabaseName)); err != nil {
			client.Disconnect(ctx)
			fatal("Error creating indexes", err)
		}
		fmt.Printf("Indexes ready on %s.%s\n", db.DatabaseName, repository.NotesCollection)
	},
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
