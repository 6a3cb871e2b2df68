// Package main provides the entry point for the arcfind CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/henderiw/arctable/cmd/arcfind/commands"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "arcfind",
		Short: "arcfind - largest clear arc of a cyclic unit domain",
		Long: `arcfind reads covering segments of the cyclic unit domain, one record
per line, and reports the largest arc left uncovered. A record with
x1 > x2 wraps through the 0/1 join point, and so may the answer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewFindCommand())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "arcfind %s\n", version)
		},
	}
}
