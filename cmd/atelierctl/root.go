package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "atelierctl",
	Short: "Run and administer the atelier server",
	Long: `atelierctl runs the atelier application server and provides
administrative commands for the database, accounts and configuration.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
