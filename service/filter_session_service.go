package services

import (
	"sync"

	"vh-server/discovery"
	"vh-server/models"
)

// FilterSessionService keeps one FilterSession per viewer session id. The
// mobile client carries its session id on every filter interaction.
type FilterSessionService struct {
	mu       sync.RWMutex
	sessions map[string]*discovery.FilterSession
}

// NewFilterSessionService constructs an empty session registry.
func NewFilterSessionService() *FilterSessionService {
	return &FilterSessionService{
		sessions: make(map[string]*discovery.FilterSession),
	}
}

// GetOrCreate returns the session for the id, creating it on first use.
func (fs *FilterSessionService) GetOrCreate(sessionID string) *discovery.FilterSession {
	fs.mu.RLock()
	session, ok := fs.sessions[sessionID]
	fs.mu.RUnlock()
	if ok {
		return session
	}

	fs.mu.Lock()
	defer fs.mu.Unlock()
	if session, ok = fs.sessions[sessionID]; ok {
		return session
	}
	session = discovery.NewFilterSession()
	fs.sessions[sessionID] = session
	return session
}

// Applied returns the applied selection for a session id. An unknown or empty
// id degrades to the empty default rather than creating a session.
func (fs *FilterSessionService) Applied(sessionID string) (models.FilterSet, models.SortKey) {
	if sessionID == "" {
		return models.FilterSet{}, models.DefaultSortKey
	}

	fs.mu.RLock()
	session, ok := fs.sessions[sessionID]
	fs.mu.RUnlock()
	if !ok {
		return models.FilterSet{}, models.DefaultSortKey
	}
	return session.Applied()
}
