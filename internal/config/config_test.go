package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/saxena100parth/codriva-hrms-sub002/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadFrom(t *testing.T) {
	t.Run("defaults with env override", func(t *testing.T) {
		t.Setenv("HRMS_JWT__SECRET", "test-secret")
		t.Setenv("HRMS_DATABASE__HOST", "db.internal")
		t.Setenv("HRMS_ONBOARDING__OTP_TTL", "5m")

		cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.NoError(t, err)
		assert.Equal(t, "test-secret", cfg.JWT.Secret)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, 5*time.Minute, cfg.Onboarding.OTPTTL)
		assert.Equal(t, 7*24*time.Hour, cfg.Onboarding.InviteTTL)
		assert.Equal(t, 5, cfg.RateLimit.OTPLimit)
		assert.True(t, cfg.Onboarding.CompleteOnNotifyFailure)
		assert.Equal(t, 18, cfg.Leave.DefaultBalances["annual"])
	})

	t.Run("yaml file then env", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		yml := `
app:
  port: "8080"
jwt:
  secret: from-file
  access_ttl: 30m
onboarding:
  complete_on_notify_failure: false
leave:
  default_balances:
    annual: 20
`
		assert.NoError(t, os.WriteFile(path, []byte(yml), 0o600))
		t.Setenv("HRMS_APP__PORT", "9090")

		cfg, err := config.LoadFrom(path)

		assert.NoError(t, err)
		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, "from-file", cfg.JWT.Secret)
		assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
		assert.False(t, cfg.Onboarding.CompleteOnNotifyFailure)
		assert.Equal(t, 20, cfg.Leave.DefaultBalances["annual"])
	})

	t.Run("negative missing secret", func(t *testing.T) {
		cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "jwt.secret")
	})
}
