package client

import (
	"encoding/json"
	"time"

	"backend/pkg/storage"
)

// SessionValidity is how long a stored login marker stays good for.
const SessionValidity = 24 * time.Hour

const sessionKey = "adminSession"

// SessionMarker is the client-held evidence of a successful admin
// login. A missing or malformed marker is simply "not authenticated".
type SessionMarker struct {
	Authenticated bool      `json:"authenticated"`
	Timestamp     time.Time `json:"timestamp"`
}

func (m SessionMarker) Valid(now time.Time) bool {
	if !m.Authenticated || m.Timestamp.IsZero() {
		return false
	}
	return now.Sub(m.Timestamp) < SessionValidity
}

// SessionStore persists the marker in the client storage slot.
type SessionStore struct {
	storage storage.Storage
}

func NewSessionStore(slot storage.Storage) *SessionStore {
	return &SessionStore{storage: slot}
}

func (s *SessionStore) MarkAuthenticated(now time.Time) error {
	data, err := json.Marshal(SessionMarker{Authenticated: true, Timestamp: now})
	if err != nil {
		return err
	}
	return s.storage.Set(sessionKey, data)
}

// Check re-validates the stored marker. An expired marker is cleared,
// forcing a fresh login on the next admin page load.
func (s *SessionStore) Check(now time.Time) bool {
	data, ok := s.storage.Get(sessionKey)
	if !ok {
		return false
	}

	var marker SessionMarker
	if err := json.Unmarshal(data, &marker); err != nil {
		_ = s.storage.Remove(sessionKey)
		return false
	}

	if !marker.Valid(now) {
		_ = s.storage.Remove(sessionKey)
		return false
	}
	return true
}

func (s *SessionStore) Logout() error {
	return s.storage.Remove(sessionKey)
}
