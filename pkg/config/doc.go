// Package config loads the server configuration from an optional YAML file
// and ATELIER_* environment variables, with environment taking precedence.
//
// The configuration is constructed once at process start and passed to the
// components that need it; nothing reads ambient environment after startup.
// The token signing secret is environment-only and never stored in the file.
package config
