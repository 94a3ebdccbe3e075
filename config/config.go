package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system:
// the HTTP server and the upstream Yahoo Finance endpoints.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	YAHOO_QUOTESUMMARY_URL=https://query1.finance.yahoo.com/v10/finance/quoteSummary
//	YAHOO_USER_AGENT=Mozilla/5.0 (compatible; investsnap/1.0)
type Config struct {
	Server ServerConfig // HTTP server configuration
	Yahoo  YahooConfig  // Upstream Yahoo Finance settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// YahooConfig defines how the upstream Yahoo Finance endpoints are reached.
//
// Fields:
//   - QuoteSummaryURL: base URL of the quoteSummary endpoint (the ticker
//     symbol is appended as a path segment). Overridable for tests.
//   - UserAgent: User-Agent header sent on quoteSummary requests; Yahoo
//     rejects requests without a browser-like agent.
type YahooConfig struct {
	QuoteSummaryURL string
	UserAgent       string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("YAHOO_QUOTESUMMARY_URL", "https://query1.finance.yahoo.com/v10/finance/quoteSummary")
	viper.SetDefault("YAHOO_USER_AGENT", "Mozilla/5.0 (compatible; investsnap/1.0)")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Yahoo: YahooConfig{
			QuoteSummaryURL: viper.GetString("YAHOO_QUOTESUMMARY_URL"),
			UserAgent:       viper.GetString("YAHOO_USER_AGENT"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Yahoo.QuoteSummaryURL == "" {
		missing = append(missing, "YAHOO_QUOTESUMMARY_URL")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
