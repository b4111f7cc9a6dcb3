// Package model contains the GORM database models for the atelier server.
//
// Every model declares its table name explicitly so the schema owned by
// db/migrations stays the single source of truth for naming.
package model
