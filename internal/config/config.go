package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

type Config struct {
	// HTTP Server
	Port string

	// Storage backend selection
	DataBackend   string // "file" or "sqlite"
	FileStorePath string
	SQLiteDBPath  string

	// AMQP (optional; empty URL disables sheet sync publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Receipt OCR (optional; empty key disables image uploads)
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OCRModel      string

	// Google Sheets sync (worker)
	SheetsSpreadsheetID string
	SheetsSheetName     string

	// Worker
	SyncInterval time.Duration
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		DataBackend:   getEnv("DATA_BACKEND", BackendFile),
		FileStorePath: getEnv("FILE_STORE_PATH", "./data/transactions.json"),
		SQLiteDBPath:  getEnv("SQLITE_DB_PATH", "./data/fincopilot.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "fincopilot"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "sync_transactions"),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		OCRModel:      getEnv("OCR_MODEL", "gpt-4o-mini"),

		SheetsSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		SheetsSheetName:     getEnv("GOOGLE_SHEET_NAME", "Transactions"),

		SyncInterval: getEnvDuration("SYNC_INTERVAL", 30*time.Second),
	}
}

// Validate checks the configuration and returns one error listing every
// problem found.
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.DataBackend {
	case BackendFile:
		if c.FileStorePath == "" {
			errors = append(errors, "file store path cannot be empty when using file backend")
		} else if err := ensureDir(c.FileStorePath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create file store directory: %v", err))
		}
	case BackendSQLite:
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else if err := ensureDir(c.SQLiteDBPath); err != nil {
			errors = append(errors, fmt.Sprintf("cannot create SQLite database directory: %v", err))
		}
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [file sqlite]", c.DataBackend))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.OpenAIAPIKey != "" && c.OCRModel == "" {
		errors = append(errors, "OCR model cannot be empty when an OpenAI API key is provided")
	}

	if c.SyncInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid sync interval %v: must be at least 1 second", c.SyncInterval))
	} else if c.SyncInterval > 24*time.Hour {
		errors = append(errors, fmt.Sprintf("invalid sync interval %v: must be at most 24 hours", c.SyncInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// SheetsEnabled reports whether the worker has enough configuration to
// sync transactions to a spreadsheet.
func (c *Config) SheetsEnabled() bool {
	return c.SheetsSpreadsheetID != ""
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
