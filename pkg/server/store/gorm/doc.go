// Package gorm implements the store interfaces on top of GORM/PostgreSQL.
//
// Queries that need precise control (tag reconciliation, association
// replacement, author lookup) are written as explicit SQL; the rest uses
// GORM's query builder.
package gorm
