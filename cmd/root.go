package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typelens",
	Short: "Infer the types hiding in loosely-typed text",
	Example: `typelens describe people.csv
typelens describe events.json --output json
typelens infer 123 123.45 true 2023-01-01 hello`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute(ctx context.Context) {
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}
