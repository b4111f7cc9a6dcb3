package integration

import (
	"context"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	atelierdb "github.com/atelier-web/atelier/db"
	"github.com/atelier-web/atelier/pkg/authn"
	"github.com/atelier-web/atelier/pkg/config"
	"github.com/atelier-web/atelier/pkg/db"
	"github.com/atelier-web/atelier/pkg/server"
	"github.com/atelier-web/atelier/pkg/server/endpoints"
	"github.com/atelier-web/atelier/pkg/uploads"
)

// TestContext holds the resources shared by the integration scenarios: a
// PostgreSQL testcontainer with the schema migrated, and an in-process
// server instance exposed through httptest.
type TestContext struct {
	DB          *gorm.DB
	Container   testcontainers.Container
	ServerURL   string
	DatabaseURL string
	HTTPClient  *http.Client

	httpSrv    *httptest.Server
	uploadsDir string
}

// NewTestContext starts a PostgreSQL container, migrates the schema and
// boots the server in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcpostgres.WithDatabase("atelier_test"),
		tcpostgres.WithUsername("atelier"),
		tcpostgres.WithPassword("atelier"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://atelier:atelier@%s:%s/atelier_test?sslmode=disable", host, port.Port())

	if err := runMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	gormDB, err := db.Connect(db.Config{URL: connStr})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	uploadsDir, err := os.MkdirTemp("", "atelier-uploads-")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	cfg := &config.Config{
		BindAddress:         "127.0.0.1",
		Port:                "0",
		UserTokenTTLMinutes: 60,
		UploadsDir:          uploadsDir,
		MaxUploadBytes:      5_000_000,
		AllowedOrigins:      []string{"*"},
		TokenSecret:         []byte("integration-test-secret"),
	}

	uploadStore, err := uploads.NewStore(cfg.UploadsDir, cfg.MaxUploadBytes)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	tokens, err := authn.NewTokenAuthority(cfg.TokenSecret, cfg.UserTokenTTL())
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	srv := server.NewServer(cfg, gormDB, tokens, uploadStore)
	endpoints.RegisterAll(srv)
	httpSrv := httptest.NewServer(srv.Router)

	return &TestContext{
		DB:          gormDB,
		Container:   pgContainer,
		ServerURL:   httpSrv.URL,
		DatabaseURL: connStr,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
		httpSrv:     httpSrv,
		uploadsDir:  uploadsDir,
	}, nil
}

func runMigrations(dbURL string) error {
	migrationsFS, err := fs.Sub(atelierdb.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, dbURL)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// ResetData truncates the mutable tables between scenarios.
func (tc *TestContext) ResetData() error {
	return tc.DB.Exec(`
		TRUNCATE article_tags, articles, tags, projects, clients, company_data, contacts, users
		RESTART IDENTITY CASCADE
	`).Error
}

// Close tears down the server and the container.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.httpSrv != nil {
		tc.httpSrv.Close()
	}
	if tc.uploadsDir != "" {
		_ = os.RemoveAll(tc.uploadsDir)
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
