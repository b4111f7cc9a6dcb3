package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// dbCmd groups the schema management subcommands
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the atelier database schema",
	Long: `Manage the atelier database schema.

Migrations are embedded in the binary and applied against DATABASE_URL.
Use "migrate" to bring the schema up to date, "down" to roll back, and
"status" to show the current version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'db' requires a subcommand (migrate, down, status)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
}
