// Package dialog implements the conversation state machine: greeting, FAQ
// menus, keyword suggestions and the AI escalation path.
package dialog

import (
	"context"
	"strings"
	"sync"

	"github.com/contaduria-er/siafbot/internal/faq"
	"github.com/contaduria-er/siafbot/internal/gemini"
	"github.com/contaduria-er/siafbot/internal/session"
)

// Reply is one outbound message. RemoveKeyboard tells the transport to drop
// any custom input affordance it is showing (Telegram reply keyboards).
type Reply struct {
	Text           string
	RemoveKeyboard bool
}

// Controller drives the dialogue. It is shared by all transports; sessions
// are keyed by a transport-scoped user key (e.g. "tg:12345").
type Controller struct {
	corpus    *faq.Corpus
	sessions  *session.Store
	generator gemini.Generator

	// Transports deliver turns concurrently; session updates are
	// read-modify-write, so turns for the same key serialize here.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a Controller over an immutable corpus.
func New(corpus *faq.Corpus, sessions *session.Store, generator gemini.Generator) *Controller {
	return &Controller{
		corpus:    corpus,
		sessions:  sessions,
		generator: generator,
		locks:     map[string]*sync.Mutex{},
	}
}

func (c *Controller) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}

// Begin handles the begin-conversation trigger (/start): the session is
// reset and the user is greeted by the welcome banner.
func (c *Controller) Begin(key string) []Reply {
	l := c.keyLock(key)
	l.Lock()
	defer l.Unlock()

	c.sessions.Reset(key)
	return []Reply{{Text: msgWelcome, RemoveKeyboard: true}}
}

// Handle processes one inbound message for key and returns the ordered
// replies. A user without a session is onboarded first.
func (c *Controller) Handle(ctx context.Context, key, text string) []Reply {
	l := c.keyLock(key)
	l.Lock()
	defer l.Unlock()

	text = strings.TrimSpace(text)

	rec, ok := c.sessions.Get(key)
	if !ok {
		c.sessions.Reset(key)
		return []Reply{{Text: msgNamePrompt}}
	}

	var replies []Reply
	switch rec.State {
	case session.StateInit:
		replies = c.handleInit(rec, text)
	case session.StateMenu:
		replies = c.handleMenu(rec, text)
	case session.StateInCategory:
		replies = c.handleCategory(rec, text)
	case session.StateAwaitingFeedback:
		replies = c.handleFeedback(rec, text)
	case session.StateAwaitingQuery:
		replies = c.handleQuery(rec, text)
	case session.StateSuggestions:
		replies = c.handleSuggestions(rec, text)
	case session.StateAwaitingRewrite:
		replies = c.handleRewrite(ctx, rec, text)
	default:
		// Unknown tag (should not happen): restart onboarding.
		rec.State = session.StateInit
		replies = []Reply{{Text: msgNamePrompt}}
	}

	// Refresh the record's TTL on every turn.
	c.sessions.Put(key, rec)
	return replies
}

func (c *Controller) handleInit(rec *session.Record, text string) []Reply {
	name := text
	if name == "" {
		name = defaultDisplayName
	}
	rec.DisplayName = name
	rec.State = session.StateMenu
	return []Reply{{Text: c.renderMenu(rec.DisplayName)}}
}

func (c *Controller) handleMenu(rec *session.Record, text string) []Reply {
	in := classify(text)
	switch in.kind {
	case inputBack:
		rec.State = session.StateAwaitingQuery
		return []Reply{{Text: rec.DisplayName + ", describí brevemente tu consulta:"}}
	case inputChoice:
		cats := c.corpus.Categories()
		if in.choice <= len(cats) {
			cat := cats[in.choice-1]
			rec.CurrentCategory = cat.Name
			rec.State = session.StateInCategory
			return []Reply{{Text: renderCategory(cat)}}
		}
	}
	return []Reply{
		{Text: msgInvalidOption},
		{Text: c.renderMenu(rec.DisplayName)},
	}
}

func (c *Controller) handleCategory(rec *session.Record, text string) []Reply {
	// The category reference crosses turns; re-validate it before use.
	cat, ok := c.corpus.Category(rec.CurrentCategory)
	if !ok {
		rec.CurrentCategory = ""
		rec.State = session.StateMenu
		return []Reply{
			{Text: msgCategoryGone},
			{Text: c.renderMenu(rec.DisplayName)},
		}
	}

	in := classify(text)
	switch in.kind {
	case inputBack:
		rec.State = session.StateMenu
		return []Reply{{Text: c.renderMenu(rec.DisplayName)}}
	case inputChoice:
		if in.choice <= len(cat.Entries) {
			return c.showAnswer(rec, cat.Entries[in.choice-1].Answer)
		}
	}
	return []Reply{
		{Text: msgInvalidOption},
		{Text: renderCategory(cat)},
	}
}

// showAnswer sends a stored answer and moves to the feedback question.
func (c *Controller) showAnswer(rec *session.Record, answer string) []Reply {
	rec.State = session.StateAwaitingFeedback
	return []Reply{
		{Text: "✅ " + answer},
		{Text: msgFeedbackAsk},
	}
}

// affirmatives are the accepted "it helped" feedback tokens.
var affirmatives = map[string]bool{
	"sí":  true,
	"si":  true,
	"s":   true,
	"yes": true,
	"y":   true,
}

func (c *Controller) handleFeedback(rec *session.Record, text string) []Reply {
	rec.State = session.StateMenu
	if affirmatives[strings.ToLower(text)] {
		return []Reply{
			{Text: "¡Genial, " + rec.DisplayName + "! 😊", RemoveKeyboard: true},
			{Text: c.renderMenu(rec.DisplayName)},
		}
	}
	return []Reply{
		{Text: msgApology},
		{Text: c.renderMenu(rec.DisplayName)},
	}
}

func (c *Controller) handleQuery(rec *session.Record, text string) []Reply {
	rec.LastQuery = text
	rec.Suggestions = c.corpus.FindMatches(text, faq.DefaultMinShared, faq.DefaultMaxResults)
	rec.State = session.StateSuggestions
	return []Reply{{Text: renderSuggestions(rec.Suggestions)}}
}

func (c *Controller) handleSuggestions(rec *session.Record, text string) []Reply {
	in := classify(text)
	switch in.kind {
	case inputBack:
		rec.State = session.StateMenu
		return []Reply{{Text: c.renderMenu(rec.DisplayName)}}
	case inputRewrite:
		rec.State = session.StateAwaitingRewrite
		return []Reply{{Text: msgRewritePrompt}}
	case inputChoice:
		if in.choice <= len(rec.Suggestions) {
			m := rec.Suggestions[in.choice-1]
			if answer, ok := c.corpus.Answer(m.Category, m.Question); ok {
				return c.showAnswer(rec, answer)
			}
		}
	}
	return []Reply{
		{Text: msgInvalidOption},
		{Text: renderSuggestions(rec.Suggestions)},
	}
}

func (c *Controller) handleRewrite(ctx context.Context, rec *session.Record, text string) []Reply {
	rec.LastRewrite = text
	rec.State = session.StateMenu
	return []Reply{
		{Text: msgProcessing},
		{Text: "🤖 " + c.escalate(ctx, text)},
		{Text: c.renderMenu(rec.DisplayName)},
	}
}
