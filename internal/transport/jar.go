// Package transport attaches the session credential to outgoing requests
// and captures renewed credentials from responses, keeping the session
// store authoritative.
package transport

import (
	"net/http"
	"net/url"
	"sync"

	"github.com/RandomSci/CapstoneProject/internal/session"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
)

// SessionJar is an http.CookieJar whose in-memory per-host cookie cache is
// backed by the durable session store. All cookies are kept, but only the
// session credential is persisted.
type SessionJar struct {
	mu      sync.Mutex
	cookies map[string][]*http.Cookie
	loaded  map[string]bool
	store   session.Store
	log     *logger.Logger
}

// NewSessionJar creates a jar over the given session store
func NewSessionJar(store session.Store, log *logger.Logger) *SessionJar {
	return &SessionJar{
		cookies: make(map[string][]*http.Cookie),
		loaded:  make(map[string]bool),
		store:   store,
		log:     log,
	}
}

// SetCookies replaces same-name entries for the URL's host and persists a
// renewed session credential through the store. Implements http.CookieJar.
func (j *SessionJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	if u == nil || len(cookies) == 0 {
		return
	}
	host := u.Host

	j.mu.Lock()
	defer j.mu.Unlock()

	existing := j.cookies[host]
	for _, c := range cookies {
		existing = replaceCookie(existing, c)
		if c.Name == session.CookieName {
			if err := j.store.Save(host, c.Value); err == nil {
				j.log.WithComponent("transport").WithField("host", host).
					Debug("Session credential captured from response")
			}
		}
	}
	j.cookies[host] = existing
}

// Cookies returns the cookies to attach to a request for the URL's host,
// falling back to the session store the first time a host is seen.
// Implements http.CookieJar.
func (j *SessionJar) Cookies(u *url.URL) []*http.Cookie {
	if u == nil {
		return nil
	}
	host := u.Host

	j.mu.Lock()
	defer j.mu.Unlock()

	j.ensureLoadedLocked(host)

	out := make([]*http.Cookie, len(j.cookies[host]))
	copy(out, j.cookies[host])
	return out
}

// SetSession installs token as the current credential for host, in memory
// and durably
func (j *SessionJar) SetSession(host, token string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.cookies[host] = replaceCookie(j.cookies[host], &http.Cookie{
		Name:  session.CookieName,
		Value: token,
		Path:  "/",
	})
	j.loaded[host] = true
	return j.store.Save(host, token)
}

// Session returns the current credential for host, or "" when absent
func (j *SessionJar) Session(host string) string {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.ensureLoadedLocked(host)
	for _, c := range j.cookies[host] {
		if c.Name == session.CookieName {
			return c.Value
		}
	}
	return ""
}

// ClearSession drops the credential for host from memory and storage
func (j *SessionJar) ClearSession(host string) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	kept := j.cookies[host][:0]
	for _, c := range j.cookies[host] {
		if c.Name != session.CookieName {
			kept = append(kept, c)
		}
	}
	j.cookies[host] = kept
	j.loaded[host] = true
	return j.store.Clear(host)
}

// ensureLoadedLocked pulls the persisted credential into the cache once per
// host. Callers must hold j.mu.
func (j *SessionJar) ensureLoadedLocked(host string) {
	if j.loaded[host] {
		return
	}
	j.loaded[host] = true

	token, err := j.store.Load(host)
	if err != nil || token == "" {
		return
	}
	j.cookies[host] = replaceCookie(j.cookies[host], &http.Cookie{
		Name:  session.CookieName,
		Value: token,
		Path:  "/",
	})
}

// replaceCookie removes any entries named like c before appending c
func replaceCookie(cookies []*http.Cookie, c *http.Cookie) []*http.Cookie {
	kept := cookies[:0]
	for _, existing := range cookies {
		if existing.Name != c.Name {
			kept = append(kept, existing)
		}
	}
	return append(kept, c)
}
