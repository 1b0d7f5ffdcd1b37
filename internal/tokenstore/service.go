// Package tokenstore keeps the access and refresh tokens issued by the
// banking API and persists them through a CredentialRepository.
package tokenstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/pkg/errors"

	console "github.com/fmitra/bankconsole"
)

const (
	accessTokenField  = "access_token"
	refreshTokenField = "refresh_token"
)

type service struct {
	logger    log.Logger
	repo      console.CredentialRepository
	mu        sync.Mutex
	creds     console.Credentials
	observers []func(console.Credentials)
}

// Load reads the persisted Credentials. Unreadable or corrupt data is
// logged and treated as absent. The normalized record is written back
// unless the repository could not be read.
func (s *service) Load(ctx context.Context) (console.Credentials, error) {
	creds := console.Credentials{}

	raw, err := s.repo.Read(ctx)
	if err != nil {
		level.Warn(s.logger).Log(
			"message", "failed to read stored tokens",
			"error", err,
			"source", "tokenstore.Load",
		)

		s.mu.Lock()
		s.creds = creds
		s.mu.Unlock()

		s.notify(creds)
		return creds, nil
	}

	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &creds); err != nil {
			level.Warn(s.logger).Log(
				"message", "stored tokens are corrupt, ignoring them",
				"error", err,
				"source", "tokenstore.Load",
			)
			creds = console.Credentials{}
		}
	}

	s.mu.Lock()
	s.creds = creds
	s.mu.Unlock()

	return s.persist(ctx)
}

// Apply replaces the tokens present in a response payload, leaving
// absent ones untouched, then persists the full record.
func (s *service) Apply(ctx context.Context, payload console.Payload) (console.Credentials, error) {
	if payload.IsEmpty() {
		return s.Credentials(), nil
	}

	s.mu.Lock()
	if token := payload.StringField(accessTokenField); token != "" {
		s.creds.AccessToken = token
	}
	if token := payload.StringField(refreshTokenField); token != "" {
		s.creds.RefreshToken = token
	}
	s.mu.Unlock()

	return s.persist(ctx)
}

// Credentials returns the current Credentials.
func (s *service) Credentials() console.Credentials {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.creds
}

// Subscribe registers a function called with the Credentials after
// every load or update.
func (s *service) Subscribe(fn func(console.Credentials)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// persist writes the current record and notifies observers. Observers
// see the in-memory record even when the write fails.
func (s *service) persist(ctx context.Context) (console.Credentials, error) {
	s.mu.Lock()
	creds := s.creds
	b, err := json.Marshal(creds)
	if err == nil {
		err = s.repo.Write(ctx, b)
	}
	s.mu.Unlock()

	s.notify(creds)

	if err != nil {
		return creds, errors.Wrap(err, "failed to persist tokens")
	}

	return creds, nil
}

func (s *service) notify(creds console.Credentials) {
	s.mu.Lock()
	observers := append(([]func(console.Credentials))(nil), s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(creds)
	}
}
