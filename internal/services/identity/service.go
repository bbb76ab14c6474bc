package identity

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mcoot/moviecat/internal/dependencies/idgen"
	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/storage"
)

// Service is the registry of identities.
//
// The whole identity list lives under a single storage key and is rewritten
// on every registration. Passwords are compared and stored in clear text.
type Service struct {
	storage storage.Storage
	ids     idgen.Generator
	logger  *slog.Logger

	// mu serializes registrations so the email check and the write are atomic
	mu sync.Mutex
}

// New creates a new identity registry
func New(storage storage.Storage, ids idgen.Generator, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		ids:     ids,
		logger:  logger.With(slog.String("component", "identity")),
	}
}

// Register stores a new identity. The email must not already be registered.
func (s *Service) Register(ctx context.Context, reg model.Registration) (*model.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	identities, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, existing := range identities {
		if existing.Email == reg.Email {
			return nil, model.ErrDuplicateEmail
		}
	}

	identity := model.Identity{
		ID:       model.IdentityID(s.ids.NewID()),
		Username: reg.Username,
		Email:    reg.Email,
		Password: reg.Password,
	}

	identities = append(identities, identity)
	if err := storage.SaveJSON(ctx, s.storage, storage.KeyUsers, identities); err != nil {
		return nil, err
	}

	s.logger.Info("identity registered",
		slog.String("identity_id", string(identity.ID)),
		slog.Int("total_identities", len(identities)))

	return &identity, nil
}

// Authenticate returns the identity matching both email and password
func (s *Service) Authenticate(ctx context.Context, email, password string) (*model.Identity, error) {
	identities, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, identity := range identities {
		if identity.Email == email && identity.Password == password {
			return &identity, nil
		}
	}

	s.logger.Info("authentication failed")
	return nil, model.ErrInvalidCredentials
}

// List returns every registered identity
func (s *Service) List(ctx context.Context) ([]model.Identity, error) {
	return s.load(ctx)
}

func (s *Service) load(ctx context.Context) ([]model.Identity, error) {
	identities := []model.Identity{}
	if _, err := storage.LoadJSON(ctx, s.storage, storage.KeyUsers, &identities); err != nil {
		return nil, err
	}
	return identities, nil
}
