// Package main provides atelierctl, the CLI for the atelier server.
//
// atelier is the REST backend for a small agency site: accounts with
// CLIENT/ADMIN roles, articles with tags, projects, clients and their
// company profiles, contact messages and image uploads.
//
// # Quick Start
//
//	# Set the token signing secret
//	export ATELIER_TOKEN_SECRET=$(head -c 32 /dev/urandom | base64)
//
//	# Run database migrations
//	atelierctl db migrate
//
//	# Create the first admin account
//	atelierctl account create-admin admin@example.com
//
//	# Start the server
//	atelierctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - ATELIER_TOKEN_SECRET: HMAC secret for session tokens
//   - ATELIER_CONFIG_PATH: Directory holding atelier.yml (default /etc/atelier)
//   - ATELIER_PORT, ATELIER_BIND_ADDRESS: Listen address overrides
//   - ATELIER_LOG_LEVEL: Set to debug for SQL logging
package main
