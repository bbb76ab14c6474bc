package events

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
)

// Event names
const (
	EventSession   = "session"
	EventFavorites = "favorites"
	EventRatings   = "ratings"
	EventTheme     = "theme"
)

// SessionSource is the observed session
type SessionSource interface {
	Current() model.Session
	Subscribe(fn func(model.Session)) observable.Unsubscribe
}

// FavoritesSource is the observed favorites list
type FavoritesSource interface {
	List() []model.Favorite
	Subscribe(fn func([]model.Favorite)) observable.Unsubscribe
}

// RatingsSource is the observed vote list
type RatingsSource interface {
	All() []model.Rating
	Subscribe(fn func([]model.Rating)) observable.Unsubscribe
}

// ThemeSource is the observed theme
type ThemeSource interface {
	Current() model.Theme
	Subscribe(fn func(model.Theme)) observable.Unsubscribe
}

// SurfaceSource exposes the classes currently applied for the theme
type SurfaceSource interface {
	Tokens() []string
}

// Sources are the stores a Feed follows
type Sources struct {
	Session   SessionSource
	Favorites FavoritesSource
	Ratings   RatingsSource
	Theme     ThemeSource
	Surface   SurfaceSource
}

// Feed publishes every change of the observed stores to stream clients.
// It serves GET requests as a text/event-stream: first the current snapshot
// of each store, then one event per change.
type Feed struct {
	hub    *Hub
	src    Sources
	logger *slog.Logger
	stops  []observable.Unsubscribe
}

// NewFeed starts a hub and subscribes it to src
func NewFeed(src Sources, logger *slog.Logger) *Feed {
	logger = logger.With(slog.String("component", "events"))
	f := &Feed{
		hub:    NewHub(logger),
		src:    src,
		logger: logger,
	}
	go f.hub.Run()

	f.stops = append(f.stops,
		src.Session.Subscribe(func(s model.Session) {
			f.hub.Publish(sessionEvent(s))
		}),
		src.Favorites.Subscribe(func(items []model.Favorite) {
			f.hub.Publish(favoritesEvent(items))
		}),
		src.Ratings.Subscribe(func(items []model.Rating) {
			f.hub.Publish(ratingsEvent(items))
		}),
		src.Theme.Subscribe(func(t model.Theme) {
			f.hub.Publish(f.themeEvent(t))
		}),
	)
	return f
}

// Snapshot returns the current state of every observed store
func (f *Feed) Snapshot() []Event {
	return []Event{
		sessionEvent(f.src.Session.Current()),
		favoritesEvent(f.src.Favorites.List()),
		ratingsEvent(f.src.Ratings.All()),
		f.themeEvent(f.src.Theme.Current()),
	}
}

// Clients returns the number of connected stream clients
func (f *Feed) Clients() int {
	return f.hub.ClientCount()
}

// Close unsubscribes from the stores and disconnects every client
func (f *Feed) Close() {
	for _, stop := range f.stops {
		stop()
	}
	f.hub.Close()
}

func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	serve(w, r, f.hub, f.Snapshot)
}

func (f *Feed) themeEvent(t model.Theme) Event {
	return Event{Name: EventTheme, Data: response.Theme{Theme: t, Classes: f.src.Surface.Tokens()}}
}

func sessionEvent(s model.Session) Event {
	return Event{Name: EventSession, Data: response.SessionFromModel(s)}
}

func favoritesEvent(items []model.Favorite) Event {
	if items == nil {
		items = []model.Favorite{}
	}
	return Event{Name: EventFavorites, Data: response.Favorites{Favorites: items}}
}

func ratingsEvent(items []model.Rating) Event {
	if items == nil {
		items = []model.Rating{}
	}
	return Event{Name: EventRatings, Data: response.Ratings{Ratings: items}}
}
