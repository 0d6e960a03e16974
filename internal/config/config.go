// Package config loads the dashboard configuration from defaults, an optional
// YAML file, a .env file and the environment, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "TOKOADMIN_CONFIG_FILE"

// Config holds every runtime setting of the dashboard.
type Config struct {
	AppPort           string        `mapstructure:"APP_PORT"`
	DatabaseDriver    string        `mapstructure:"DATABASE_DRIVER"`
	DatabaseDSN       string        `mapstructure:"DATABASE_DSN"`
	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	JWTTTL            time.Duration `mapstructure:"JWT_TTL"`
	RabbitMQURL       string        `mapstructure:"RABBITMQ_URL"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LogPretty         bool          `mapstructure:"LOG_PRETTY"`
	StrictColorValues bool          `mapstructure:"STRICT_COLOR_VALUES"`
	PublicURL         string        `mapstructure:"PUBLIC_URL"`
}

var keys = []string{
	"APP_PORT", "DATABASE_DRIVER", "DATABASE_DSN", "JWT_SECRET", "JWT_TTL",
	"RABBITMQ_URL", "LOG_LEVEL", "LOG_PRETTY", "STRICT_COLOR_VALUES", "PUBLIC_URL",
}

// setDefaults registers the built-in values on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "postgres")
	v.SetDefault("DATABASE_DSN", "host=127.0.0.1 user=postgres password=postgres dbname=toko port=5432 sslmode=disable")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_TTL", 24*time.Hour)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)
	v.SetDefault("STRICT_COLOR_VALUES", true)
	v.SetDefault("PUBLIC_URL", "http://localhost:8080")
}

// Load reads the configuration. args are the command line arguments without
// the program name; --config selects a YAML file, overridden by the
// TOKOADMIN_CONFIG_FILE environment variable.
func Load(args []string) (Config, error) {
	// A missing .env file is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	// AutomaticEnv only consults the environment for keys viper knows of.
	for _, k := range keys {
		if err := v.BindEnv(k); err != nil {
			return Config{}, fmt.Errorf("failed to bind %s: %w", k, err)
		}
	}

	path, err := configFilepath(args)
	if err != nil {
		return Config{}, err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configFilepath(args []string) (string, error) {
	cmdLine := pflag.NewFlagSet("tokoadmin", pflag.ContinueOnError)
	arg := cmdLine.String("config", "", "config file (YAML)")
	if err := cmdLine.Parse(args); err != nil {
		return "", fmt.Errorf("failed to parse flags: %w", err)
	}
	if env, ok := os.LookupEnv(configFileEnvName); ok {
		return env, nil
	}
	return *arg, nil
}

// Validate checks settings that have no usable default.
func (c Config) Validate() error {
	if strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	switch c.DatabaseDriver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q", c.DatabaseDriver)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DATABASE_DSN must be set")
	}
	return nil
}
