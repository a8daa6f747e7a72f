// Package telegram adapts the dialogue controller to Telegram long polling.
package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"github.com/contaduria-er/siafbot/internal/dialog"
)

// Bot wraps the Telegram transport around the dialogue controller.
type Bot struct {
	bot            *bot.Bot
	allowedUserIDs map[int64]bool
	dialog         *dialog.Controller
}

// New creates a new Telegram bot. When allowedIDs is non-empty, messages
// from any other user are dropped.
func New(token string, allowedIDs []int64, ctrl *dialog.Controller) (*Bot, error) {
	allowed := make(map[int64]bool)
	for _, id := range allowedIDs {
		allowed[id] = true
	}

	b := &Bot{
		allowedUserIDs: allowed,
		dialog:         ctrl,
	}

	opts := []bot.Option{
		bot.WithDefaultHandler(b.handleUpdate),
		bot.WithErrorsHandler(func(err error) {
			if err != nil {
				log.Printf("⚠️ [TGBOT] Error: %v", err)
			}
		}),
	}

	tgBot, err := bot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	b.bot = tgBot

	return b, nil
}

// Start begins long polling and blocks until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	_, err := b.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: []models.BotCommand{
			{Command: "start", Description: "🤖 Iniciar el asistente"},
		},
	})
	if err != nil {
		log.Printf("⚠️ Failed to set bot commands: %v", err)
	}

	log.Println("🚀 Telegram bot started.")
	b.bot.Start(ctx)
	log.Println("Telegram bot loop stopped.")
}

// handleUpdate processes all incoming updates.
func (b *Bot) handleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	message := update.Message
	if message == nil || message.From == nil {
		return
	}

	chatID := message.Chat.ID
	userID := message.From.ID
	if len(b.allowedUserIDs) > 0 && !b.allowedUserIDs[userID] && !b.allowedUserIDs[chatID] {
		log.Printf("Unauthorized access attempt from user %d in chat %d", userID, chatID)
		return
	}

	key := fmt.Sprintf("tg:%d", chatID)

	var replies []dialog.Reply
	if strings.HasPrefix(message.Text, "/start") {
		replies = b.dialog.Begin(key)
	} else {
		replies = b.dialog.Handle(ctx, key, message.Text)
	}

	b.send(ctx, chatID, replies)
}

// send delivers the controller's replies in order. A send failure is logged
// and the remaining replies are still attempted.
func (b *Bot) send(ctx context.Context, chatID int64, replies []dialog.Reply) {
	for _, reply := range replies {
		params := &bot.SendMessageParams{
			ChatID: chatID,
			Text:   reply.Text,
		}
		if reply.RemoveKeyboard {
			params.ReplyMarkup = &models.ReplyKeyboardRemove{RemoveKeyboard: true}
		}
		if _, err := b.bot.SendMessage(ctx, params); err != nil {
			log.Printf("⚠️ Failed to send message to chat %d: %v", chatID, err)
		}
	}
}
