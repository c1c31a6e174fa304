package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MatchingDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Matching.DateToleranceDays)
	assert.Equal(t, 5, cfg.Matching.MinConfidenceScore)
}

func TestMatcherConfig(t *testing.T) {
	cfg := &Config{Matching: MatchingConfig{DateToleranceDays: 7, MinConfidenceScore: 6}}

	mc := cfg.MatcherConfig()
	assert.Equal(t, 7, mc.DateToleranceDays)
	assert.Equal(t, 6, mc.MinConfidenceScore)
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:     "localhost",
		Port:     3306,
		User:     "app",
		Password: "secret",
		Name:     "matching",
		Params:   "parseTime=true",
	}}

	assert.Equal(t, "app:secret@tcp(localhost:3306)/matching?parseTime=true", cfg.GetDSN())
}
