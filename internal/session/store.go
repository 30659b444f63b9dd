// Package session persists the dashboard login session between CLI
// invocations: the bearer token plus the user object the login endpoint
// returned.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/agenticmail/dashboard/internal/normalize"
)

const (
	sessionBucket = "session"
	tokenKey      = "token"
	userKey       = "user"
	savedAtKey    = "saved_at"
)

var (
	ErrStoreClosed  = errors.New("session store is closed")
	ErrNotLoggedIn  = errors.New("not logged in")
	ErrMissingToken = errors.New("session token is required")
)

// Session is one persisted login.
type Session struct {
	Token   string
	User    normalize.Map
	SavedAt time.Time
}

// Store holds the current session in a bbolt database.
type Store struct {
	mu     sync.RWMutex
	db     *bolt.DB
	path   string
	closed bool
}

// Open opens or creates the session database at path.
func Open(path string) (*Store, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, fmt.Errorf("session path is required")
	}
	if err := os.MkdirAll(filepath.Dir(trimmed), 0o700); err != nil {
		return nil, fmt.Errorf("ensure session dir: %w", err)
	}
	options := &bolt.Options{Timeout: time.Second}
	db, err := bolt.Open(trimmed, 0o600, options)
	if err != nil {
		return nil, fmt.Errorf("open session db: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure session bucket: %w", err)
	}
	return &Store{db: db, path: trimmed}, nil
}

// Close closes the underlying database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// Save replaces the stored session.
func (s *Store) Save(token string, user normalize.Map) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		if err := bucket.Put([]byte(tokenKey), []byte(token)); err != nil {
			return err
		}
		if err := bucket.Put([]byte(userKey), encoded); err != nil {
			return err
		}
		savedAt := time.Now().UTC().Format(time.RFC3339)
		return bucket.Put([]byte(savedAtKey), []byte(savedAt))
	})
}

// Current returns the stored session, or ErrNotLoggedIn when none exists.
func (s *Store) Current() (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Session{}, ErrStoreClosed
	}

	var session Session
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		token := bucket.Get([]byte(tokenKey))
		if len(token) == 0 {
			return ErrNotLoggedIn
		}
		session.Token = string(token)
		if raw := bucket.Get([]byte(userKey)); len(raw) > 0 {
			if err := json.Unmarshal(raw, &session.User); err != nil {
				return fmt.Errorf("decode user: %w", err)
			}
		}
		if raw := bucket.Get([]byte(savedAtKey)); len(raw) > 0 {
			if parsed, err := time.Parse(time.RFC3339, string(raw)); err == nil {
				session.SavedAt = parsed
			}
		}
		return nil
	})
	if err != nil {
		return Session{}, err
	}
	if session.User == nil {
		session.User = normalize.Map{}
	}
	return session, nil
}

// Clear removes the stored session. Clearing an empty store is not an
// error.
func (s *Store) Clear() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrStoreClosed
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))
		for _, key := range []string{tokenKey, userKey, savedAtKey} {
			if err := bucket.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}
