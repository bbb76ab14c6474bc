package ratings

import (
	"context"
	"log/slog"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
	"github.com/mcoot/moviecat/internal/services/scoped"
	"github.com/mcoot/moviecat/internal/storage"
)

// Service holds the votes of the active identity. Each movie has at most one
// vote; voting again replaces it.
type Service struct {
	store *scoped.Store[model.MovieID, model.Rating]
}

// New creates a ratings service bound to sess
func New(st storage.Storage, sess scoped.SessionSource, rec scoped.Recorder, logger *slog.Logger) *Service {
	cfg := scoped.Config[model.MovieID, model.Rating]{
		Name:       "ratings",
		StorageKey: storage.KeyRatings,
		KeyOf:      func(r model.Rating) model.MovieID { return r.MovieID },
		Codec:      voteCodec{},
		Recorder:   rec,
	}
	return &Service{store: scoped.New(cfg, st, sess, logger)}
}

// Vote records value for the movie, replacing any earlier vote
func (s *Service) Vote(ctx context.Context, id model.MovieID, value float64) error {
	return s.store.Upsert(ctx, model.Rating{MovieID: id, Value: value})
}

// GetVote returns the vote for the movie, or 0 if there is none
func (s *Service) GetVote(id model.MovieID) float64 {
	r, ok := s.store.Get(id)
	if !ok {
		return 0
	}
	return r.Value
}

func (s *Service) HasVoted(id model.MovieID) bool {
	return s.store.Contains(id)
}

// All returns every vote of the active identity
func (s *Service) All() []model.Rating {
	return s.store.Items()
}

func (s *Service) Subscribe(fn func([]model.Rating)) observable.Unsubscribe {
	return s.store.Subscribe(fn)
}

// Close detaches the service from the session
func (s *Service) Close() {
	s.store.Close()
}
