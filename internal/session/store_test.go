package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUnknownKey(t *testing.T) {
	s := NewStore(0)

	_, ok := s.Get("tg:1")
	assert.False(t, ok)
}

func TestPutAndGet(t *testing.T) {
	s := NewStore(0)

	s.Put("tg:1", &Record{State: StateMenu, DisplayName: "Alice"})

	r, ok := s.Get("tg:1")
	require.True(t, ok)
	assert.Equal(t, StateMenu, r.State)
	assert.Equal(t, "Alice", r.DisplayName)
}

func TestResetReplacesRecord(t *testing.T) {
	s := NewStore(0)
	s.Put("tg:1", &Record{State: StateSuggestions, DisplayName: "Alice"})

	r := s.Reset("tg:1")
	assert.Equal(t, StateInit, r.State)
	assert.Empty(t, r.DisplayName)

	got, ok := s.Get("tg:1")
	require.True(t, ok)
	assert.Same(t, r, got)
}

func TestRecordsAreIsolatedPerKey(t *testing.T) {
	s := NewStore(0)
	s.Put("tg:1", &Record{State: StateMenu})
	s.Put("dc:abc", &Record{State: StateInCategory})

	r1, _ := s.Get("tg:1")
	r2, _ := s.Get("dc:abc")
	assert.Equal(t, StateMenu, r1.State)
	assert.Equal(t, StateInCategory, r2.State)
}

func TestTTLEvictsIdleRecords(t *testing.T) {
	s := NewStore(20 * time.Millisecond)
	s.Put("tg:1", &Record{State: StateMenu})

	_, ok := s.Get("tg:1")
	require.True(t, ok)

	time.Sleep(40 * time.Millisecond)
	_, ok = s.Get("tg:1")
	assert.False(t, ok)
}
