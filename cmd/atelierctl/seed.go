package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/db"
	"github.com/atelier-web/atelier/pkg/model"
	gormstore "github.com/atelier-web/atelier/pkg/server/store/gorm"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with sample data",
	Long: `Populate the database with a sample admin, client, company profile,
project and a tagged article. Intended for development environments.

Example:
  atelierctl seed`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := seed(); err != nil {
			fmt.Fprintln(os.Stderr, "Seeding failed:", err)
			os.Exit(1)
		}
		fmt.Println("Seed data created")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func seed() error {
	gormDB, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	users := gormstore.NewUsersStore(gormDB)
	clients := gormstore.NewClientsStore(gormDB)
	company := gormstore.NewCompanyStore(gormDB)
	projects := gormstore.NewProjectsStore(gormDB)
	articles := gormstore.NewArticlesStore(gormDB)

	adminHash, err := authn.HashPassword("admin-password")
	if err != nil {
		return err
	}
	admin := &model.User{
		Email:     "admin@atelier.local",
		Password:  adminHash,
		FirstName: "Ada",
		LastName:  "Admin",
		Role:      model.RoleAdmin,
	}
	if err := users.CreateUser(admin); err != nil {
		return err
	}

	clientHash, err := authn.HashPassword("client-password")
	if err != nil {
		return err
	}
	clientUser := &model.User{
		Email:     "client@atelier.local",
		Password:  clientHash,
		FirstName: "Cleo",
		LastName:  "Client",
		Role:      model.RoleClient,
	}
	if err := users.CreateUser(clientUser); err != nil {
		return err
	}

	companyData := &model.CompanyData{
		CompanyName:       "Acme Interiors",
		Industry:          "Retail",
		Website:           "https://acme.example",
		Size:              "11-50",
		City:              "Rotterdam",
		Country:           "NL",
		FoundedYear:       2012,
		Services:          pq.StringArray{"branding", "web design"},
		MarketingChannels: pq.StringArray{"search", "social"},
		Competitors:       pq.StringArray{"Initech"},
	}
	if err := company.CreateCompanyData(companyData); err != nil {
		return err
	}

	client := &model.Client{
		FirstName:     clientUser.FirstName,
		LastName:      clientUser.LastName,
		Email:         clientUser.Email,
		PhoneNumber:   "+31 10 000 0000",
		UserID:        clientUser.ID,
		CompanyDataID: companyData.ID,
	}
	if err := clients.CreateClient(client); err != nil {
		return err
	}

	start := time.Now().AddDate(0, -2, 0)
	project := &model.Project{
		Name:        "Acme rebrand",
		Description: "Full identity refresh and webshop relaunch.",
		ClientID:    client.ID,
		StartDate:   &start,
		Status:      "in_progress",
	}
	if err := projects.CreateProject(project); err != nil {
		return err
	}

	article := &model.Article{
		Title:     "Welcome to the studio",
		Content:   "# Hello\n\nFirst post from the atelier.",
		Published: true,
		UserID:    admin.ID,
	}
	return articles.CreateArticle(article, []string{"studio", "news"})
}
