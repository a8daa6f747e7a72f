package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/contaduria-er/siafbot/internal/config"
	"github.com/contaduria-er/siafbot/internal/dialog"
	"github.com/contaduria-er/siafbot/internal/discord"
	"github.com/contaduria-er/siafbot/internal/faq"
	"github.com/contaduria-er/siafbot/internal/gemini"
	"github.com/contaduria-er/siafbot/internal/session"
	"github.com/contaduria-er/siafbot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	corpus := faq.Load(cfg.FAQPath)
	if corpus.Empty() {
		log.Fatalf("❌ FAQ corpus is empty. Check the file at %s.", cfg.FAQPath)
	}
	log.Printf("✅ FAQ loaded: %d categories from %s", corpus.Len(), cfg.FAQPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	generator, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("❌ Failed to create Gemini client: %v", err)
	}

	sessions := session.NewStore(cfg.SessionTTL)
	ctrl := dialog.New(corpus, sessions, generator)

	tgBot, err := telegram.New(cfg.TelegramToken, cfg.AllowedUserIDs, ctrl)
	if err != nil {
		log.Fatalf("❌ Failed to create Telegram bot: %v", err)
	}

	if cfg.DiscordToken != "" {
		dcBot, err := discord.New(cfg.DiscordToken, cfg.DiscordGuildID, ctrl)
		if err != nil {
			log.Fatalf("❌ Failed to create Discord bot: %v", err)
		}
		if err := dcBot.Start(); err != nil {
			log.Fatalf("❌ Failed to start Discord bot: %v", err)
		}
		defer dcBot.Stop()
	}

	log.Println("🚀 Starting SIAF assistant...")
	tgBot.Start(ctx)
}
