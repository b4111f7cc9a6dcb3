package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/atelier"
	ConfigFileName    = "atelier.yml"

	// EnvTokenSecret is the environment variable holding the HMAC secret
	// used to sign and verify session tokens. It has no file equivalent.
	EnvTokenSecret = "ATELIER_TOKEN_SECRET"
)

// Config holds all atelier server settings.
type Config struct {
	// BindAddress is the address the HTTP server listens on
	BindAddress string `yaml:"bind_address" json:"bind_address"`

	// Port is the HTTP server port
	Port string `yaml:"port" json:"port"`

	// UserTokenTTLMinutes is the lifetime of issued session tokens in minutes
	UserTokenTTLMinutes int `yaml:"user_token_ttl_minutes" json:"user_token_ttl_minutes"`

	// UploadsDir is the directory image uploads are written to
	UploadsDir string `yaml:"uploads_dir" json:"uploads_dir"`

	// MaxUploadBytes caps the size of a single uploaded image
	MaxUploadBytes int64 `yaml:"max_upload_bytes" json:"max_upload_bytes"`

	// AllowedOrigins is the CORS origin allow-list
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins"`

	// TokenSecret signs session tokens. Environment-only (ATELIER_TOKEN_SECRET).
	TokenSecret []byte `yaml:"-" json:"-"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

func newDefault() *Config {
	return &Config{
		BindAddress:         "0.0.0.0",
		Port:                "3333",
		UserTokenTTLMinutes: 1440,
		UploadsDir:          "uploads",
		MaxUploadBytes:      5_000_000,
		AllowedOrigins:      []string{"*"},
		sources:             make(map[string]string),
	}
}

func attributeNames() []string {
	return []string{
		"bind_address", "port", "user_token_ttl_minutes",
		"uploads_dir", "max_upload_bytes", "allowed_origins",
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("ATELIER_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.UserTokenTTLMinutes != 0 {
		c.UserTokenTTLMinutes = file.UserTokenTTLMinutes
		c.sources["user_token_ttl_minutes"] = "file"
	}
	if file.UploadsDir != "" {
		c.UploadsDir = file.UploadsDir
		c.sources["uploads_dir"] = "file"
	}
	if file.MaxUploadBytes != 0 {
		c.MaxUploadBytes = file.MaxUploadBytes
		c.sources["max_upload_bytes"] = "file"
	}
	if len(file.AllowedOrigins) > 0 {
		c.AllowedOrigins = file.AllowedOrigins
		c.sources["allowed_origins"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("ATELIER_BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("ATELIER_PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("ATELIER_USER_TOKEN_TTL_MINUTES"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.UserTokenTTLMinutes = i
			c.sources["user_token_ttl_minutes"] = "environment"
		}
	}
	if val := os.Getenv("ATELIER_UPLOADS_DIR"); val != "" {
		c.UploadsDir = val
		c.sources["uploads_dir"] = "environment"
	}
	if val := os.Getenv("ATELIER_MAX_UPLOAD_BYTES"); val != "" {
		if i, err := strconv.ParseInt(val, 10, 64); err == nil {
			c.MaxUploadBytes = i
			c.sources["max_upload_bytes"] = "environment"
		}
	}
	if val := os.Getenv("ATELIER_ALLOWED_ORIGINS"); val != "" {
		c.AllowedOrigins = splitAndTrim(val)
		c.sources["allowed_origins"] = "environment"
	}
	if val := os.Getenv(EnvTokenSecret); val != "" {
		c.TokenSecret = []byte(val)
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// UserTokenTTL returns the session token lifetime as a duration
func (c *Config) UserTokenTTL() time.Duration {
	return time.Duration(c.UserTokenTTLMinutes) * time.Minute
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if len(c.TokenSecret) == 0 {
		return fmt.Errorf("%s environment variable is required", EnvTokenSecret)
	}
	if c.UserTokenTTLMinutes <= 0 {
		return fmt.Errorf("user_token_ttl_minutes must be positive, got %d", c.UserTokenTTLMinutes)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", c.MaxUploadBytes)
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and
// sources. The token secret is deliberately absent.
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "bind_address", Value: c.BindAddress, Source: c.Source("bind_address")},
		{Name: "port", Value: c.Port, Source: c.Source("port")},
		{Name: "user_token_ttl_minutes", Value: strconv.Itoa(c.UserTokenTTLMinutes), Source: c.Source("user_token_ttl_minutes")},
		{Name: "uploads_dir", Value: c.UploadsDir, Source: c.Source("uploads_dir")},
		{Name: "max_upload_bytes", Value: strconv.FormatInt(c.MaxUploadBytes, 10), Source: c.Source("max_upload_bytes")},
		{Name: "allowed_origins", Value: strings.Join(c.AllowedOrigins, ","), Source: c.Source("allowed_origins")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-30s %-20s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
