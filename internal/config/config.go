package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"attachment-matching-service/internal/matching"
)

type Config struct {
	ServerAddress string
	Environment   string
	Database      DatabaseConfig
	Migration     MigrationConfig
	Matching      MatchingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	Params   string
}

type MigrationConfig struct {
	Dir string
}

// MatchingConfig exposes the matching knobs. The defaults are the
// documented matching contract; override them only for experimentation.
type MatchingConfig struct {
	DateToleranceDays  int
	MinConfidenceScore int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("MIGRATION_DIR", "migrations")
	viper.SetDefault("MATCH_DATE_TOLERANCE_DAYS", matching.DefaultDateToleranceDays)
	viper.SetDefault("MATCH_MIN_CONFIDENCE_SCORE", matching.MinConfidenceScore)

	// A missing .env is fine; environment variables and defaults apply.
	if err := viper.ReadInConfig(); err != nil && !os.IsNotExist(err) {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{
		ServerAddress: viper.GetString("SERVER_ADDRESS"),
		Environment:   viper.GetString("ENVIRONMENT"),
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetInt("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			Params:   viper.GetString("DB_PARAMS"),
		},
		Migration: MigrationConfig{
			Dir: viper.GetString("MIGRATION_DIR"),
		},
		Matching: MatchingConfig{
			DateToleranceDays:  viper.GetInt("MATCH_DATE_TOLERANCE_DAYS"),
			MinConfidenceScore: viper.GetInt("MATCH_MIN_CONFIDENCE_SCORE"),
		},
	}

	return config, nil
}

// MatcherConfig converts config values into the matching package's config.
func (c *Config) MatcherConfig() matching.Config {
	return matching.Config{
		DateToleranceDays:  c.Matching.DateToleranceDays,
		MinConfidenceScore: c.Matching.MinConfidenceScore,
	}
}

// GetDSN returns the MySQL DSN string
func (c *Config) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.Params,
	)
}

// GetMigrationDBURL returns the database URL for migrations
func (c *Config) GetMigrationDBURL() string {
	return fmt.Sprintf("mysql://%s:%s@tcp(%s:%d)/%s?%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.Params,
	)
}
