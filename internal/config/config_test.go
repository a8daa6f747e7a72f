package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "tg-token")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("FAQ_PATH", "")
	t.Setenv("ALLOWED_USER_IDS", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("DISCORD_GUILD_ID", "")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tg-token", cfg.TelegramToken)
	assert.Equal(t, "gm-key", cfg.GeminiAPIKey)
	assert.Equal(t, "faq.json", cfg.FAQPath)
	assert.Empty(t, cfg.AllowedUserIDs)
	assert.Zero(t, cfg.SessionTTL)
}

func TestLoadMissingTelegramToken(t *testing.T) {
	setRequired(t)
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "TELEGRAM_BOT_TOKEN")
}

func TestLoadMissingGeminiKey(t *testing.T) {
	setRequired(t)
	t.Setenv("GEMINI_API_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}

func TestLoadAllowedUserIDs(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_USER_IDS", "123, 456")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []int64{123, 456}, cfg.AllowedUserIDs)
}

func TestLoadInvalidAllowedUserIDs(t *testing.T) {
	setRequired(t)
	t.Setenv("ALLOWED_USER_IDS", "abc")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadSessionTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_TTL_MINUTES", "30")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadInvalidSessionTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("SESSION_TTL_MINUTES", "-5")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadFAQPathOverride(t *testing.T) {
	setRequired(t)
	t.Setenv("FAQ_PATH", "/etc/siafbot/faq.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/etc/siafbot/faq.json", cfg.FAQPath)
}
