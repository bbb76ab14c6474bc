// Package theme holds the dark/light presentation preference.
package theme

import (
	"context"
	"log/slog"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/observable"
	"github.com/mcoot/moviecat/internal/storage"
)

// Store is the observable theme preference. Every value it takes, the
// initial one included, is persisted and applied to the surface.
type Store struct {
	value   *observable.Value[model.Theme]
	storage storage.Storage
	surface Surface
	logger  *slog.Logger

	stopApply observable.Unsubscribe
}

// New resolves the initial theme and starts applying changes.
//
// The initial theme is the stored value when it is valid, else the ambient
// preference (prefersDark, nil when unknown), else dark.
func New(ctx context.Context, st storage.Storage, surface Surface, prefersDark *bool, logger *slog.Logger) *Store {
	s := &Store{
		storage: st,
		surface: surface,
		logger:  logger.With(slog.String("component", "theme")),
	}
	s.value = observable.New(s.initial(ctx, prefersDark))
	s.stopApply = s.value.Subscribe(s.apply)
	return s
}

func (s *Store) initial(ctx context.Context, prefersDark *bool) model.Theme {
	raw, found, err := s.storage.Get(ctx, storage.KeyTheme)
	if err != nil {
		s.logger.Warn("failed to read stored theme", slog.String("error", err.Error()))
	}
	if found {
		if t, err := model.ParseTheme(raw); err == nil {
			return t
		}
		s.logger.Warn("ignoring invalid stored theme", slog.String("value", raw))
	}
	if prefersDark != nil && !*prefersDark {
		return model.ThemeLight
	}
	return model.ThemeDark
}

// apply persists t and makes it the only theme token on the surface
func (s *Store) apply(t model.Theme) {
	if err := s.storage.Set(context.Background(), storage.KeyTheme, string(t)); err != nil {
		s.logger.Error("failed to persist theme",
			slog.String("theme", string(t)),
			slog.String("error", err.Error()))
	}

	s.surface.Replace([]string{string(model.ThemeLight), string(model.ThemeDark)}, string(t))
}

// Current returns the active theme
func (s *Store) Current() model.Theme {
	return s.value.Get()
}

// Set changes the theme
func (s *Store) Set(t model.Theme) {
	s.logger.Debug("theme changed", slog.String("theme", string(t)))
	s.value.Set(t)
}

// Toggle flips between dark and light and returns the new theme
func (s *Store) Toggle() model.Theme {
	var next model.Theme
	s.value.Update(func(current model.Theme) model.Theme {
		next = current.Toggled()
		return next
	})
	return next
}

// Subscribe registers fn for every theme change, starting with the current one
func (s *Store) Subscribe(fn func(model.Theme)) observable.Unsubscribe {
	return s.value.Subscribe(fn)
}

// Close stops persisting and applying changes
func (s *Store) Close() {
	s.stopApply()
}
