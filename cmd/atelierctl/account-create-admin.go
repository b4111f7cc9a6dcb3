package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/db"
	"github.com/atelier-web/atelier/pkg/model"
	gormstore "github.com/atelier-web/atelier/pkg/server/store/gorm"
)

// accountCreateAdminCmd represents the account create-admin command
var accountCreateAdminCmd = &cobra.Command{
	Use:   "create-admin EMAIL",
	Short: "Create an admin account",
	Long: `Create an admin account for the given email.

The password is read from the ATELIER_ADMIN_PASSWORD environment variable,
or prompted on stdin when the variable is not set.

Example:
  atelierctl account create-admin admin@example.com`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]

		password := os.Getenv("ATELIER_ADMIN_PASSWORD")
		if password == "" {
			fmt.Print("Password: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil {
				fmt.Fprintln(os.Stderr, "Failed to read password:", err)
				os.Exit(1)
			}
			password = strings.TrimSpace(line)
		}
		if password == "" {
			fmt.Fprintln(os.Stderr, "Password must not be empty")
			os.Exit(1)
		}

		if err := createAdmin(email, password); err != nil {
			fmt.Fprintln(os.Stderr, "Failed to create admin account:", err)
			os.Exit(1)
		}
		fmt.Printf("Created admin account %s\n", email)
	},
}

func init() {
	accountCmd.AddCommand(accountCreateAdminCmd)
}

func createAdmin(email, password string) error {
	gormDB, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	hash, err := authn.HashPassword(password)
	if err != nil {
		return err
	}

	users := gormstore.NewUsersStore(gormDB)
	return users.CreateUser(&model.User{
		Email:    email,
		Password: hash,
		Role:     model.RoleAdmin,
	})
}
