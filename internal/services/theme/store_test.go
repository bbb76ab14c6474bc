package theme

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/storage"
	"github.com/mcoot/moviecat/internal/storage/memory"
	"github.com/mcoot/moviecat/internal/testutil"
)

type StoreSuite struct {
	suite.Suite
	storage *memory.Storage
	surface *ClassList
	ctx     context.Context
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.storage = memory.New()
	s.surface = NewClassList("app")
	s.ctx = context.Background()
}

func (s *StoreSuite) newStore(prefersDark *bool) *Store {
	return New(s.ctx, s.storage, s.surface, prefersDark, testutil.NopLogger())
}

func (s *StoreSuite) stored() string {
	raw, _, _ := s.storage.Get(s.ctx, storage.KeyTheme)
	return raw
}

func ptr(b bool) *bool { return &b }

func themeTokens(tokens []string) int {
	n := 0
	for _, t := range tokens {
		if t == "light" || t == "dark" {
			n++
		}
	}
	return n
}

func (s *StoreSuite) TestAmbientLightPreference() {
	store := s.newStore(ptr(false))

	s.Equal(model.ThemeLight, store.Current())
	s.Equal("light", s.stored())
	s.Equal([]string{"app", "light"}, s.surface.Tokens())
}

func (s *StoreSuite) TestAmbientDarkPreference() {
	store := s.newStore(ptr(true))

	s.Equal(model.ThemeDark, store.Current())
}

func (s *StoreSuite) TestDefaultsToDarkWithoutSignal() {
	store := s.newStore(nil)

	s.Equal(model.ThemeDark, store.Current())
	s.Equal("dark", s.stored())
}

func (s *StoreSuite) TestStoredValueWins() {
	_ = s.storage.Set(s.ctx, storage.KeyTheme, "light")

	store := s.newStore(ptr(true))

	s.Equal(model.ThemeLight, store.Current())
}

func (s *StoreSuite) TestInvalidStoredValueIgnored() {
	_ = s.storage.Set(s.ctx, storage.KeyTheme, "purple")

	store := s.newStore(ptr(false))

	s.Equal(model.ThemeLight, store.Current())
	s.Equal("light", s.stored())
}

func (s *StoreSuite) TestSetPersistsAndApplies() {
	store := s.newStore(ptr(false))

	store.Set(model.ThemeDark)

	s.Equal("dark", s.stored())
	s.True(s.surface.Has("dark"))
	s.False(s.surface.Has("light"))
}

func (s *StoreSuite) TestExactlyOneTokenAfterEveryChange() {
	s.surface.AddClass("light")
	s.surface.AddClass("dark")
	store := s.newStore(nil)

	for range 3 {
		store.Toggle()
		s.Equal(1, themeTokens(s.surface.Tokens()))
		s.True(s.surface.Has(string(store.Current())))
	}
}

func (s *StoreSuite) TestReadersNeverSeeSurfaceWithoutTheme() {
	store := s.newStore(nil)
	defer store.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 500 {
			store.Toggle()
		}
	}()

	for {
		select {
		case <-done:
			s.Equal(1, themeTokens(s.surface.Tokens()))
			return
		default:
			s.Require().Equal(1, themeTokens(s.surface.Tokens()))
		}
	}
}

func (s *StoreSuite) TestToggle() {
	store := s.newStore(nil)

	s.Equal(model.ThemeLight, store.Toggle())
	s.Equal(model.ThemeDark, store.Toggle())
	s.Equal("dark", s.stored())
}

func (s *StoreSuite) TestSurvivesRestart() {
	store := s.newStore(nil)
	store.Set(model.ThemeLight)
	store.Close()

	restarted := s.newStore(ptr(true))

	s.Equal(model.ThemeLight, restarted.Current())
}

func TestClassListReplace(t *testing.T) {
	c := NewClassList("app", "dark", "wide")

	c.Replace([]string{"light", "dark"}, "light")
	assert.Equal(t, []string{"app", "wide", "light"}, c.Tokens())

	c.Replace([]string{"light", "dark"}, "light")
	assert.Equal(t, []string{"app", "wide", "light"}, c.Tokens())
}

func (s *StoreSuite) TestSubscribersSeeChanges() {
	store := s.newStore(nil)
	var seen []model.Theme
	unsubscribe := store.Subscribe(func(t model.Theme) { seen = append(seen, t) })
	defer unsubscribe()

	store.Toggle()

	s.Equal([]model.Theme{model.ThemeDark, model.ThemeLight}, seen)
}
