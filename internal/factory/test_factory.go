package factory

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/mcoot/moviecat/internal/catalog"
	"github.com/mcoot/moviecat/internal/dependencies/mocks"
	"github.com/mcoot/moviecat/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockIDs *mocks.MockIDGenerator
	Memory  *memory.Storage
}

// NewTestApp creates an App backed by memory storage with deterministic
// identity ids (U1, U2, ...). The catalog points at catalogURL.
func NewTestApp(catalogURL string, httpClient *http.Client) *TestApp {
	store := memory.New()
	mockIDs := mocks.NewMockIDGenerator()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	catalogClient := catalog.NewClient(catalog.Config{BaseURL: catalogURL, APIKey: "test-key"}, httpClient, nil, logger)
	app := newWithDependencies(store, mockIDs, catalogClient, nil, nil, logger)

	return &TestApp{
		App:     app,
		MockIDs: mockIDs,
		Memory:  store,
	}
}
