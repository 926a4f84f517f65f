package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "connekt-dev")
	t.Setenv("FIREBASE_STORAGE_BUCKET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "connekt-dev.appspot.com", cfg.StorageBucket)
	assert.Equal(t, 100, cfg.TalentPoolFanoutLimit)
	assert.InDelta(t, 0.15, cfg.CommissionRate, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("FIREBASE_STORAGE_BUCKET", "media-bucket")
	t.Setenv("COMMISSION_RATE", "0.2")
	t.Setenv("RATING_RATE_LIMIT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "media-bucket", cfg.StorageBucket)
	assert.InDelta(t, 0.2, cfg.CommissionRate, 1e-9)
	assert.Equal(t, 10, cfg.RatingRateLimit)
}
