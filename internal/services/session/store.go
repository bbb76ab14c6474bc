package session

import (
	"log/slog"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
)

// Store holds the process-wide session.
//
// It has no durable backing: a restarted process always begins anonymous,
// even though favorites and ratings survive the restart.
type Store struct {
	value  *observable.Value[model.Session]
	logger *slog.Logger
}

// New creates an anonymous session store
func New(logger *slog.Logger) *Store {
	return &Store{
		value:  observable.New(model.AnonymousSession()),
		logger: logger.With(slog.String("component", "session")),
	}
}

// Login makes identity the active session. The identity is not validated.
func (s *Store) Login(identity model.Identity) {
	s.logger.Info("session started", slog.String("identity_id", string(identity.ID)))
	s.value.Set(model.Session{IsAuthenticated: true, Identity: &identity})
}

// Logout clears the active session
func (s *Store) Logout() {
	s.logger.Info("session ended")
	s.value.Set(model.AnonymousSession())
}

// Current returns the active session
func (s *Store) Current() model.Session {
	return s.value.Get()
}

// Subscribe registers fn for every session change, starting with the current one
func (s *Store) Subscribe(fn func(model.Session)) observable.Unsubscribe {
	return s.value.Subscribe(fn)
}
