// Package session holds the per-user conversation state. Records are
// ephemeral: they live in memory for the process lifetime, or until the
// configured TTL evicts them.
package session

import (
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/contaduria-er/siafbot/internal/faq"
)

// State tags the position of a user in the dialogue.
type State string

const (
	StateInit             State = "init"        // waiting for the user's name
	StateMenu             State = "menu"        // category menu shown
	StateInCategory       State = "category"    // one category's questions shown
	StateAwaitingFeedback State = "feedback"    // answer shown, waiting for Sí/No
	StateAwaitingQuery    State = "query"       // waiting for a free-text query
	StateSuggestions      State = "suggestions" // keyword matches shown
	StateAwaitingRewrite  State = "rewrite"     // waiting for a restated query
)

// Record is one user's conversation state.
type Record struct {
	State           State
	DisplayName     string
	CurrentCategory string      // must name a corpus category while browsing
	Suggestions     []faq.Match // pending numbered suggestions
	LastQuery       string
	LastRewrite     string
}

// Store is the session repository keyed by a transport-scoped user key
// (e.g. "tg:12345"). A zero TTL keeps records for the process lifetime.
type Store struct {
	c *cache.Cache
}

// NewStore creates a session store. With ttl > 0, records not touched for
// ttl are evicted; Put refreshes the clock on every turn.
func NewStore(ttl time.Duration) *Store {
	expiration := cache.NoExpiration
	cleanup := time.Duration(0)
	if ttl > 0 {
		expiration = ttl
		cleanup = ttl
	}
	return &Store{c: cache.New(expiration, cleanup)}
}

// Get returns the record for key, if present.
func (s *Store) Get(key string) (*Record, bool) {
	v, ok := s.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.(*Record), true
}

// Put stores the record for key and refreshes its TTL.
func (s *Store) Put(key string, r *Record) {
	s.c.Set(key, r, cache.DefaultExpiration)
}

// Reset replaces any record for key with a fresh one in StateInit and
// returns it. Used on first contact and on the begin-conversation trigger.
func (s *Store) Reset(key string) *Record {
	r := &Record{State: StateInit}
	s.Put(key, r)
	return r
}
