package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typelens/typelens/config"
	"github.com/typelens/typelens/datasources/csv"
	"github.com/typelens/typelens/datasources/json"
	"github.com/typelens/typelens/outputs/formats"
	"github.com/typelens/typelens/typelens"
)

var describeCmd = &cobra.Command{
	Use:   "describe FILE",
	Short: "Profile a CSV or NDJSON file and print the inferred schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Read(configPath)
		if err != nil {
			return fmt.Errorf("couldn't read config: %w", err)
		}
		if cmd.Flags().Changed("output") {
			cfg.Output = output
		}
		if cmd.Flags().Changed("separator") {
			cfg.Separator = separator
		}
		if cmd.Flags().Changed("limit") {
			cfg.RowLimit = rowLimit
		}

		path := args[0]
		var columns []typelens.Column
		switch ext := strings.ToLower(filepath.Ext(path)); ext {
		case ".csv", ".tsv":
			sep := []rune(cfg.Separator)
			if len(sep) != 1 {
				return fmt.Errorf("separator must be a single character, got %q", cfg.Separator)
			}
			if ext == ".tsv" {
				sep = []rune{'\t'}
			}
			columns, err = csv.Describe(path, csv.Options{
				Separator: sep[0],
				NoHeader:  noHeader,
				RowLimit:  cfg.RowLimit,
			})
		case ".json", ".jsonl", ".ndjson":
			columns, err = json.Describe(path, json.Options{
				LineLimit: cfg.RowLimit,
			})
		default:
			return fmt.Errorf("unsupported file extension '%s'", ext)
		}
		if err != nil {
			return fmt.Errorf("couldn't profile file: %w", err)
		}

		var formatter formats.Formatter
		switch cfg.Output {
		case "table":
			formatter = formats.NewTableFormatter(os.Stdout)
		case "json":
			formatter = formats.NewJSONFormatter(os.Stdout)
		default:
			return fmt.Errorf("invalid output format '%s'", cfg.Output)
		}
		return formatter.Format(columns)
	},
}

var (
	configPath string
	output     string
	separator  string
	rowLimit   int
	noHeader   bool
)

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVar(&configPath, "config", ".typelens.yml", "Path of the configuration file.")
	describeCmd.Flags().StringVar(&output, "output", "table", "Output format, one of: table, json.")
	describeCmd.Flags().StringVar(&separator, "separator", ",", "CSV field separator.")
	describeCmd.Flags().IntVar(&rowLimit, "limit", 0, "Maximum rows to profile, 0 for all.")
	describeCmd.Flags().BoolVar(&noHeader, "no-header", false, "Treat the first CSV row as data.")
}
