package favorites

import (
	"context"
	"log/slog"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
	"github.com/mcoot/moviecat/internal/services/scoped"
	"github.com/mcoot/moviecat/internal/storage"
)

// Service is the favorites list of the active identity
type Service struct {
	store *scoped.Store[model.MovieID, model.Favorite]
}

// New creates a favorites service bound to sess
func New(st storage.Storage, sess scoped.SessionSource, rec scoped.Recorder, logger *slog.Logger) *Service {
	cfg := scoped.Config[model.MovieID, model.Favorite]{
		Name:       "favorites",
		StorageKey: storage.KeyFavorites,
		KeyOf:      func(f model.Favorite) model.MovieID { return f.ID },
		Recorder:   rec,
	}
	return &Service{store: scoped.New(cfg, st, sess, logger)}
}

// Add marks a movie as favorite. Adding a movie twice keeps the first entry.
func (s *Service) Add(ctx context.Context, movie model.Favorite) error {
	return s.store.Add(ctx, movie)
}

// Remove unmarks a movie
func (s *Service) Remove(ctx context.Context, id model.MovieID) error {
	return s.store.Remove(ctx, id)
}

func (s *Service) IsFavorite(id model.MovieID) bool {
	return s.store.Contains(id)
}

// List returns the favorites in insertion order
func (s *Service) List() []model.Favorite {
	return s.store.Items()
}

func (s *Service) Subscribe(fn func([]model.Favorite)) observable.Unsubscribe {
	return s.store.Subscribe(fn)
}

// Close detaches the service from the session
func (s *Service) Close() {
	s.store.Close()
}
