package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/halcyonpay/payctl/internal/errors"
	"github.com/halcyonpay/payctl/internal/log"
)

// Store persists a single session token per profile. There is exactly one
// slot; every save overwrites it wholesale. Concurrent invocations are
// last-writer-wins, which is acceptable for a single-user local tool.
type Store struct {
	path   string
	margin time.Duration
	now    func() time.Time
	logger *log.Logger
}

// NewStore creates a Store persisting to path with the default safety margin.
func NewStore(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.DefaultLogger()
	}
	return &Store{
		path:   path,
		margin: DefaultSafetyMargin,
		now:    time.Now,
		logger: logger,
	}
}

// WithMargin overrides the safety margin and returns the store.
func (s *Store) WithMargin(margin time.Duration) *Store {
	s.margin = margin
	return s
}

// WithClock overrides the time source, for tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Path returns the location of the persisted slot.
func (s *Store) Path() string {
	return s.path
}

// Save serializes the token to the slot, creating the parent directory if
// absent. Write failures surface as storage errors; they are never silent.
func (s *Store) Save(tok Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.NewStoreWriteError(s.path, err)
	}

	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return errors.NewStoreWriteError(s.path, err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.NewStoreWriteError(s.path, err)
	}

	s.logger.Debug("session token saved",
		"path", s.path,
		"expires_at", tok.ExpiresAt)
	return nil
}

// Load reads the slot and returns the token if it is still usable.
//
// A nil token with a nil error means absent: the slot does not exist, its
// contents cannot be parsed, or the stored token is at or past its expiry
// minus the safety margin. The caller cannot tell these apart; all three
// mean "authenticate again". A non-nil error is a real storage failure
// (permissions, I/O) and is distinct from absence.
func (s *Store) Load() (*Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("no session slot", "path", s.path)
			return nil, nil
		}
		return nil, errors.NewStoreReadError(s.path, err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		// A corrupt slot reads as absent; the next login overwrites it.
		s.logger.Debug("session slot unparsable, treating as absent",
			"path", s.path,
			"parse_error", err.Error())
		return nil, nil
	}

	if tok.AccessToken == "" {
		s.logger.Debug("session slot has no access token, treating as absent", "path", s.path)
		return nil, nil
	}

	if !tok.UsableAt(s.now(), s.margin) {
		s.logger.Debug("session token expired or inside safety margin",
			"expires_at", tok.ExpiresAt)
		return nil, nil
	}

	return &tok, nil
}

// Clear removes the slot. A missing slot is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeStoreClearFailed, "failed to remove session file", err)
	}
	return nil
}
