package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration
type Config struct {
	TelegramToken  string
	GeminiAPIKey   string
	GeminiModel    string
	FAQPath        string
	AllowedUserIDs []int64
	DiscordToken   string
	DiscordGuildID string
	SessionTTL     time.Duration // 0 disables eviction
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}

	cfg := &Config{
		TelegramToken:  token,
		GeminiAPIKey:   apiKey,
		GeminiModel:    os.Getenv("GEMINI_MODEL"),
		FAQPath:        "faq.json",
		AllowedUserIDs: []int64{},
		DiscordToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),
	}

	if path := os.Getenv("FAQ_PATH"); path != "" {
		cfg.FAQPath = path
	}

	// Parse allowed user IDs (comma-separated)
	if userIDs := os.Getenv("ALLOWED_USER_IDS"); userIDs != "" {
		for _, idStr := range strings.Split(userIDs, ",") {
			id, err := strconv.ParseInt(strings.TrimSpace(idStr), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid user ID %q: %w", idStr, err)
			}
			cfg.AllowedUserIDs = append(cfg.AllowedUserIDs, id)
		}
	}

	if ttl := os.Getenv("SESSION_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(strings.TrimSpace(ttl))
		if err != nil || minutes < 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_MINUTES %q", ttl)
		}
		cfg.SessionTTL = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}
