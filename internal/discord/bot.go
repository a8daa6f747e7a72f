// Package discord adapts the dialogue controller to Discord, mirroring the
// Telegram transport so both drive the same conversation flow.
package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/contaduria-er/siafbot/internal/dialog"
)

// Bot wraps the Discord transport around the dialogue controller.
type Bot struct {
	session *discordgo.Session
	guildID string // optional: restrict to one guild
	dialog  *dialog.Controller
}

// New creates a new Discord bot.
func New(token string, guildID string, ctrl *dialog.Controller) (*Bot, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	b := &Bot{
		session: session,
		guildID: guildID,
		dialog:  ctrl,
	}

	session.AddHandler(b.handleMessage)
	session.AddHandler(b.handleReady)
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentsDirectMessages | discordgo.IntentsMessageContent

	return b, nil
}

// Start opens the gateway connection.
func (b *Bot) Start() error {
	log.Println("Starting Discord bot...")
	return b.session.Open()
}

// Stop closes the gateway connection.
func (b *Bot) Stop() error {
	log.Println("Stopping Discord bot...")
	return b.session.Close()
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Discord bot connected as %s#%s", r.User.Username, r.User.Discriminator)
}

// handleMessage processes incoming messages. Discord has no reply keyboards,
// so the RemoveKeyboard signal is a no-op here.
func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}
	if b.guildID != "" && m.GuildID != "" && m.GuildID != b.guildID {
		return
	}

	key := "dc:" + m.ChannelID

	var replies []dialog.Reply
	if strings.TrimSpace(m.Content) == "!start" {
		replies = b.dialog.Begin(key)
	} else {
		replies = b.dialog.Handle(context.Background(), key, m.Content)
	}

	for _, reply := range replies {
		if _, err := s.ChannelMessageSend(m.ChannelID, reply.Text); err != nil {
			log.Printf("⚠️ Failed to send message to channel %s: %v", m.ChannelID, err)
		}
	}
}
