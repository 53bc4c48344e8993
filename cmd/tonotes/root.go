package main

import (
	"fmt"
	"log"
	"os"

	"tonotes/config"

	"github.com/spf13/cobra"
)

var envFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tonotes",
	Short: "Personal notes API with AI-assisted analysis",
	Long: `tonotes serves an owner-scoped notes API backed by MongoDB or Redis,
and ships the operator commands that go with it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
		if envFile != "" {
			config.LoadEnvFile(envFile)
		} else {
			config.LoadEnvFile()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "Path of a .env file to load (default .env when present)")
}
