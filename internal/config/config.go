package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `validate:"required"`
	Logging  LoggingConfig  `validate:"required"`
	Postgres PostgresConfig `validate:"required"`
	Auth     AuthConfig     `validate:"required"`
	S3       S3Config
	Cache    CacheConfig
	Sentry   SentryConfig
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required"`
	User     string `validate:"required"`
	Password string
	DBName   string `validate:"required"`
	SSLMode  string
	AutoMigrate bool
}

// AuthConfig holds the static admin credentials and the JWT signing secret.
// AdminPassword may be a bcrypt hash (preferred) or a plain value.
type AuthConfig struct {
	Secret           string `validate:"required"`
	AdminUsername    string `validate:"required"`
	AdminPassword    string `validate:"required"`
	TokenExpiryHours int
}

type S3Config struct {
	Enabled               bool
	Region                string
	Bucket                string
	KeyPrefix             string
	PublicURLBase         string
	PresignExpiryDuration string
}

type CacheConfig struct {
	Enabled bool
}

type SentryConfig struct {
	Enabled     bool
	DSN         string
	Environment string
	SampleRate  float64
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Load .env for local development before viper reads the environment
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/trelax")

	v.SetEnvPrefix("TRELAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", string(types.LogLevelInfo))
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.automigrate", false)
	v.SetDefault("auth.tokenexpiryhours", 24)
	v.SetDefault("cache.enabled", true)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Auth: AuthConfig{
			Secret:           "test-secret",
			AdminUsername:    "admin",
			AdminPassword:    "admin",
			TokenExpiryHours: 24,
		},
		Cache: CacheConfig{Enabled: true},
	}
}
