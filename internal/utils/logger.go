package utils

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/edmsantos/account-api/internal/config"
)

// InitLogger initializes the application logger with the given configuration
func InitLogger(cfg *config.AppConfig) {
	// Set global log level
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Logging.Level))
	if err != nil {
		// Default to info level if invalid
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Configure logger output format
	var output io.Writer = os.Stdout
	if strings.ToLower(cfg.Logging.Format) == "console" && !cfg.App.IsProduction() {
		output = zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}
	}

	log.Logger = zerolog.New(output).
		With().
		Timestamp().
		Str("app", cfg.App.Name).
		Str("version", cfg.App.Version).
		Str("env", cfg.App.Environment).
		Logger()

	log.Info().Msg("Logger initialized")
}

// LogDBQuery logs a database query with its duration. Query arguments should
// already have sensitive values replaced before being passed in.
func LogDBQuery(query string, args []interface{}, duration time.Duration, err error) {
	event := log.Debug().
		Str("query", strings.Join(strings.Fields(query), " ")).
		Dur("duration", duration)

	if len(args) > 0 {
		event = event.Interface("args", args)
	}

	if err != nil {
		log.Error().
			Err(err).
			Str("query", strings.Join(strings.Fields(query), " ")).
			Dur("duration", duration).
			Msg("Database query failed")
		return
	}

	event.Msg("Database query executed")
}

// LogAuth logs an authentication event without recording credentials.
func LogAuth(event, userID, email string, success bool, reason string) {
	logger := log.Info()
	if !success {
		logger = log.Warn()
	}

	entry := logger.
		Str("event", event).
		Str("user_id", userID).
		Bool("success", success)

	if email != "" {
		entry = entry.Str("email", email)
	}
	if reason != "" {
		entry = entry.Str("reason", reason)
	}

	entry.Msg("Authentication event")
}
