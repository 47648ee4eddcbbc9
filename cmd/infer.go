package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/typelens/typelens/inference"
)

var inferCmd = &cobra.Command{
	Use:   "infer VALUE...",
	Short: "Infer and convert individual values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inf := inference.Inferrer{TrimSpace: !noTrim}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"value", "type", "converted"})
		table.SetAutoFormatHeaders(false)
		for _, arg := range args {
			converted := inf.Convert(arg)
			table.Append([]string{arg, inf.InferString(arg).String(), converted.String()})
		}
		table.Render()
		return nil
	},
}

var noTrim bool

func init() {
	rootCmd.AddCommand(inferCmd)
	inferCmd.Flags().BoolVar(&noTrim, "no-trim", false, "Don't trim surrounding whitespace before matching.")
}
