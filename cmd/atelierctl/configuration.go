package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-web/atelier/pkg/config"
)

// configurationCmd represents the configuration command
var configurationCmd = &cobra.Command{
	Use:     "configuration",
	Aliases: []string{"config"},
	Short:   "Inspect server configuration",
	Long:    `Inspect server configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'configuration' requires a subcommand (show)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// configurationShowCmd represents the configuration show command
var configurationShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration and where each value came from",
	Long: `Show the effective configuration and where each value came from
(default, file or environment). The token secret is never printed.

Example:
  atelierctl configuration show
  atelierctl configuration show --output json`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			os.Exit(1)
		}

		output, _ := cmd.Flags().GetString("output")
		switch output {
		case "json":
			data, err := json.MarshalIndent(cfg.Attributes(), "", "  ")
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed to render configuration:", err)
				os.Exit(1)
			}
			fmt.Println(string(data))
		default:
			fmt.Print(cfg.FormatText())
		}
	},
}

func init() {
	rootCmd.AddCommand(configurationCmd)
	configurationCmd.AddCommand(configurationShowCmd)
	configurationShowCmd.Flags().StringP("output", "o", "text", "Output format (text or json)")
}
