package cliparse

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          int
	DatabaseURL   string
	DatabaseType  string
	ModelPath     string
	DefaultsPath  string
	PositiveClass string
	AdminKey      string
	LogLevel      string
	LogFormat     string
}

const (
	DefaultPort          = 3318
	DefaultDatabaseURL   = "file:psychopredict.db"
	DefaultModelPath     = "ml_model/mental_health_model.gob"
	DefaultPositiveClass = "Yes"
)

// ParseFlags reads flags, falling back to environment variables (and a
// .env file in the working directory, if present) for anything unset.
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("ignoring unreadable .env file", "error", err)
	}

	fs := flag.NewFlagSet("psychopredict", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.ModelPath, "model", "", "Path to the trained model artifact")
	fs.StringVar(&cfg.DefaultsPath, "defaults", "", "YAML file overriding form defaults")
	fs.StringVar(&cfg.PositiveClass, "positive-class", "", "Label whose probability is shown as confidence")
	fs.StringVar(&cfg.AdminKey, "admin-key", "", "Key required to list predictions (prefer env)")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "log-format", "", "Log format (text or json)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, errors.New("port must be between 1 and 65535")
	}

	cfg.DatabaseURL = fallback(cfg.DatabaseURL, "DATABASE_URL", DefaultDatabaseURL)
	cfg.DatabaseType = fallback(cfg.DatabaseType, "DATABASE_TYPE", "sqlite")
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	cfg.ModelPath = fallback(cfg.ModelPath, "MODEL_PATH", DefaultModelPath)
	cfg.DefaultsPath = fallback(cfg.DefaultsPath, "FORM_DEFAULTS_PATH", "")
	cfg.PositiveClass = fallback(cfg.PositiveClass, "POSITIVE_CLASS", DefaultPositiveClass)
	cfg.AdminKey = fallback(cfg.AdminKey, "ADMIN_KEY", "")
	cfg.LogLevel = fallback(cfg.LogLevel, "LOG_LEVEL", "info")
	cfg.LogFormat = fallback(cfg.LogFormat, "LOG_FORMAT", "text")

	return cfg, nil
}

// fallback returns value, else the environment variable, else def.
func fallback(value, env, def string) string {
	if value != "" {
		return value
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}
