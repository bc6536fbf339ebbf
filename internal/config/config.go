package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds all configuration for the admin console
type Config struct {
	Storage    StorageConfig
	Auth       AuthConfig
	Pagination PaginationConfig
	Logging    LoggingConfig
}

// StorageConfig holds durable storage specific configuration
type StorageConfig struct {
	Type        string
	BasePath    string
	Permissions string
}

// AuthConfig holds session gate specific configuration.
// The credential pair is fixed at deploy time; the password is carried as
// a bcrypt hash so the plaintext never lives in configuration.
type AuthConfig struct {
	Username     string
	PasswordHash string
	TokenSecret  string
}

// PaginationConfig holds defaults for paginated views
type PaginationConfig struct {
	ItemsPerPage int
}

// LoggingConfig holds logging specific configuration
type LoggingConfig struct {
	Level string
}

// LoadConfig loads the configuration from file and environment variables
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Read from environment variables
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns a configuration populated with the built-in defaults only
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static and always unmarshal cleanly
		panic(fmt.Sprintf("invalid default config: %v", err))
	}

	return &cfg
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Storage defaults
	v.SetDefault("storage.type", "local")
	v.SetDefault("storage.basePath", "./data")
	v.SetDefault("storage.permissions", "0644")

	// Auth defaults
	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.passwordHash", defaultPasswordHash())
	v.SetDefault("auth.tokenSecret", "news-admin-session-secret")

	// Pagination defaults
	v.SetDefault("pagination.itemsPerPage", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
}

var (
	defaultHashOnce sync.Once
	defaultHash     string
)

// defaultPasswordHash returns the bcrypt hash backing the built-in admin123
// credential, computed once per process. Deployments override it through
// auth.passwordHash.
func defaultPasswordHash() string {
	defaultHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			// Only reachable with an out-of-range cost
			panic(fmt.Sprintf("failed to hash default password: %v", err))
		}
		defaultHash = string(hash)
	})
	return defaultHash
}
