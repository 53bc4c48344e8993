package main

import (
	"encoding/json"
	"io"
	"os"

	"tonotes/services"
	"tonotes/utils"

	"github.com/spf13/cobra"
)

var (
	parseLanguage string
	parseLabels   string
)

var parseCmd = &cobra.Command{
	Use:   "parse-analysis [file]",
	Short: "Parse a saved analysis reply and print the extracted fields as JSON",
	Long:  `Parse-analysis reads generator output from a file, or stdin when no file is given, and runs it through the analysis parser.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in := io.Reader(os.Stdin)
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				fatal("Error opening file", err)
			}
			defer f.Close()
			in = f
		}

		raw, err := io.ReadAll(in)
		if err != nil {
			fatal("Error reading input", err)
		}

		if parseLanguage == "" {
			parseLanguage = utils.GetEnvAsString("ANALYSIS_LANGUAGE", "tr")
		}
		if parseLabels == "" {
			parseLabels = os.Getenv("ANALYSIS_LABELS_FILE")
		}
		labels, err := loadLabels(parseLanguage, parseLabels)
		if err != nil {
			fatal("Error loading labels", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(services.ParseAnalysis(string(raw), labels)); err != nil {
			fatal("Error encoding result", err)
		}
	},
}

func init() {
	parseCmd.Flags().StringVar(&parseLanguage, "lang", "", "Built-in label set, tr or en (default $ANALYSIS_LANGUAGE or tr)")
	parseCmd.Flags().StringVar(&parseLabels, "labels", "", "YAML file overriding the label set (default $ANALYSIS_LABELS_FILE)")
	rootCmd.AddCommand(parseCmd)
}
