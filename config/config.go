package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	HTTPServer  HTTPServerConfig
	Logger      LoggerConfig
	Sheets      SheetsConfig
	Cache       CacheConfig
	RateLimit   RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SheetsConfig binds the service to one backing spreadsheet.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsPath string
	QuotaPerMinute  int
}

type CacheConfig struct {
	TTLSeconds int
	Size       int
}

type RateLimitConfig struct {
	PerMinute int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Sheets.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")
	cfg.Sheets.CredentialsPath = viper.GetString("sheets.credentials_path")
	cfg.Sheets.QuotaPerMinute = viper.GetInt("sheets.quota_per_minute")
	// Flat env fallbacks for container deployments.
	if sid := viper.GetString("spreadsheet_id"); sid != "" {
		cfg.Sheets.SpreadsheetID = sid
	}
	if creds := viper.GetString("google_sheets_credentials"); creds != "" {
		cfg.Sheets.CredentialsPath = creds
	}

	cfg.Cache.TTLSeconds = viper.GetInt("cache.ttl_seconds")
	cfg.Cache.Size = viper.GetInt("cache.size")
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "json")
	viper.SetDefault("logger.color_enabled", false)
	viper.SetDefault("sheets.quota_per_minute", 50)
	viper.SetDefault("cache.ttl_seconds", 30)
	viper.SetDefault("cache.size", 8)
	viper.SetDefault("rate_limit.per_minute", 120)
}
