package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moviecat/internal/storage"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetMissingKey() {
	value, found, err := s.storage.Get(s.ctx, "missing")
	s.Require().NoError(err)
	s.False(found)
	s.Empty(value)
}

func (s *StorageSuite) TestSetThenGet() {
	s.Require().NoError(s.storage.Set(s.ctx, storage.KeyTheme, "dark"))

	value, found, err := s.storage.Get(s.ctx, storage.KeyTheme)
	s.Require().NoError(err)
	s.True(found)
	s.Equal("dark", value)
}

func (s *StorageSuite) TestSetOverwrites() {
	_ = s.storage.Set(s.ctx, "k", "one")
	_ = s.storage.Set(s.ctx, "k", "two")

	value, _, _ := s.storage.Get(s.ctx, "k")
	s.Equal("two", value)
	s.Equal(1, s.storage.Len())
}

func (s *StorageSuite) TestLoadJSONAbsentKey() {
	dest := map[string]int{"untouched": 1}

	found, err := storage.LoadJSON(s.ctx, s.storage, storage.KeyRatings, &dest)
	s.Require().NoError(err)
	s.False(found)
	s.Equal(map[string]int{"untouched": 1}, dest)
}

func (s *StorageSuite) TestSaveAndLoadJSON() {
	in := map[string][]int{"u1": {1, 2}}
	s.Require().NoError(storage.SaveJSON(s.ctx, s.storage, storage.KeyFavorites, in))

	raw, _, _ := s.storage.Get(s.ctx, storage.KeyFavorites)
	s.JSONEq(`{"u1":[1,2]}`, raw)

	var out map[string][]int
	found, err := storage.LoadJSON(s.ctx, s.storage, storage.KeyFavorites, &out)
	s.Require().NoError(err)
	s.True(found)
	s.Equal(in, out)
}

func (s *StorageSuite) TestLoadJSONCorruptBlob() {
	_ = s.storage.Set(s.ctx, storage.KeyUsers, "{not json")

	var out []string
	_, err := storage.LoadJSON(s.ctx, s.storage, storage.KeyUsers, &out)
	s.Error(err)
}
