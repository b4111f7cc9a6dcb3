// Package db provides the GORM/PostgreSQL connection used by the server
// and the CLI. Schema changes live in db/migrations at the repository root.
package db
