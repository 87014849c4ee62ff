package history

import (
	"log"
	"strings"
	"sync"
)

// MAX_HISTORY_ENTRIES caps the recent-searches log.
const MAX_HISTORY_ENTRIES = 3

// DAO persists the raw history list. Implementations live in dao/redis.
type DAO interface {
	LoadHistory() ([]string, error)
	SaveHistory(entries []string) error
}

// Store is the bounded, deduplicated, most-recent-first log of search terms.
// Persistence is fire-and-forget: a failing save never blocks a search.
type Store struct {
	mu      sync.RWMutex
	dao     DAO
	entries []string
}

// NewStore loads the persisted history once. A load failure degrades to an
// empty history for this session.
func NewStore(dao DAO) *Store {
	entries, err := dao.LoadHistory()
	if err != nil {
		log.Printf("[HistoryStore] Failed to load history, starting empty: %v", err)
		entries = nil
	}
	if len(entries) > MAX_HISTORY_ENTRIES {
		entries = entries[:MAX_HISTORY_ENTRIES]
	}
	return &Store{dao: dao, entries: entries}
}

// Record logs a confirmed search term: move-to-front insert, exact-string
// dedupe, then truncate to the cap. Blank terms are never recorded.
func (s *Store) Record(query string) {
	term := strings.TrimSpace(query)
	if term == "" {
		return
	}

	s.mu.Lock()
	s.entries = pushTerm(s.entries, term)
	snapshot := append([]string(nil), s.entries...)
	s.mu.Unlock()

	if err := s.dao.SaveHistory(snapshot); err != nil {
		log.Printf("[HistoryStore] Failed to persist history: %v", err)
	}
}

// pushTerm is the pure history transformation.
func pushTerm(entries []string, term string) []string {
	out := make([]string, 0, len(entries)+1)
	out = append(out, term)
	for _, e := range entries {
		if e != term {
			out = append(out, e)
		}
	}
	if len(out) > MAX_HISTORY_ENTRIES {
		out = out[:MAX_HISTORY_ENTRIES]
	}
	return out
}

// Entries returns the current history, most recent first.
func (s *Store) Entries() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.entries...)
}

// Suggestions returns the recent searches, but only while the viewer's
// current query is still blank. A non-blank query yields nothing.
func (s *Store) Suggestions(currentQuery string) []string {
	if strings.TrimSpace(currentQuery) != "" {
		return nil
	}
	return s.Entries()
}
