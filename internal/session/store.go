// Package session persists the opaque session credential across process
// restarts, scoped per remote host.
package session

import (
	"github.com/RandomSci/CapstoneProject/internal/prefs"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
)

// CookieName is the credential header/cookie key used by the remote system
const CookieName = "session_id"

const (
	sessionKeyPrefix = "session_id:"
	userIDKey        = "user_id"
)

// Store holds the current session credential. An empty token means
// unauthenticated.
type Store interface {
	Save(host, token string) error
	Load(host string) (string, error)
	Clear(host string) error
}

// PrefsStore implements Store over the local prefs database. Storage read
// errors are swallowed and treated as "no token": the credential is
// re-derived from the next successful login, so failing open to the
// unauthenticated state is preferable to blocking every request.
type PrefsStore struct {
	prefs *prefs.Store
	log   *logger.Logger
}

// NewPrefsStore creates a session store over the given prefs database
func NewPrefsStore(p *prefs.Store, log *logger.Logger) *PrefsStore {
	return &PrefsStore{prefs: p, log: log}
}

// Save persists token keyed by host, overwriting any prior token
func (s *PrefsStore) Save(host, token string) error {
	if err := s.prefs.Set(sessionKeyPrefix+host, token); err != nil {
		s.log.WithComponent("session").WithField("host", host).WithError(err).
			Warn("Failed to persist session token")
		return err
	}
	return nil
}

// Load returns the current token for host, or "" if absent or unreadable
func (s *PrefsStore) Load(host string) (string, error) {
	token, ok, err := s.prefs.Get(sessionKeyPrefix + host)
	if err != nil {
		s.log.WithComponent("session").WithField("host", host).WithError(err).
			Warn("Failed to load session token, treating as unauthenticated")
		return "", nil
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// Clear removes the token for host (logout)
func (s *PrefsStore) Clear(host string) error {
	return s.prefs.Delete(sessionKeyPrefix + host)
}

// SaveUserID persists the authenticated user identifier
func (s *PrefsStore) SaveUserID(id string) error {
	return s.prefs.Set(userIDKey, id)
}

// UserID returns the stored user identifier, or "" when absent
func (s *PrefsStore) UserID() string {
	id, _, err := s.prefs.Get(userIDKey)
	if err != nil {
		return ""
	}
	return id
}

// ClearUserID removes the stored user identifier
func (s *PrefsStore) ClearUserID() error {
	return s.prefs.Delete(userIDKey)
}
