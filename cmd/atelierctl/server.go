package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/config"
	"github.com/atelier-web/atelier/pkg/db"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/endpoints"
	"github.com/atelier-web/atelier/pkg/uploads"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the atelier application server",
	Long: `Run the atelier application server.

Requires the DATABASE_URL and ATELIER_TOKEN_SECRET environment variables.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Validate required environment variables first (fail fast)
		if os.Getenv(config.EnvTokenSecret) == "" {
			fmt.Fprintf(os.Stderr, "%s environment variable is required\n", config.EnvTokenSecret)
			os.Exit(1)
		}
		if db.URL() == "" {
			fmt.Fprintln(os.Stderr, "DATABASE_URL environment variable is required")
			os.Exit(1)
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
			os.Exit(1)
		}

		// Run migrations unless --no-migrate is set
		noMigrate, _ := cmd.Flags().GetBool("no-migrate")
		if !noMigrate {
			log.Println("Running database migrations...")
			if err := runMigrations(); err != nil {
				fmt.Fprintf(os.Stderr, "Migration failed: %v\n", err)
				os.Exit(1)
			}
		}

		gormDB, err := db.Connect(db.Config{})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to connect to database:", err)
			os.Exit(1)
		}

		uploadStore, err := uploads.NewStore(cfg.UploadsDir, cfg.MaxUploadBytes)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to initialise uploads store:", err)
			os.Exit(1)
		}
		stopWatch, err := uploadStore.Watch()
		if err != nil {
			log.Println("Uploads directory watch disabled:", err)
		} else {
			defer stopWatch()
		}

		tokens, err := authn.NewTokenAuthority(cfg.TokenSecret, cfg.UserTokenTTL())
		if err != nil {
			fmt.Fprintln(os.Stderr, "Unable to initialise token authority:", err)
			os.Exit(1)
		}

		srv := server.NewServer(cfg, gormDB, tokens, uploadStore)
		endpoints.RegisterAll(srv)

		log.Printf("atelier server listening on %s:%s", cfg.BindAddress, cfg.Port)
		if err := srv.Start(); err != nil {
			fmt.Fprintln(os.Stderr, "Server stopped:", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().Bool("no-migrate", false, "Skip database migrations on startup")
}
