package favorites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/services/session"
	"github.com/mcoot/moviecat/internal/storage"
	"github.com/mcoot/moviecat/internal/storage/memory"
	"github.com/mcoot/moviecat/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	session *session.Store
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.session = session.New(testutil.NopLogger())
	s.service = New(s.storage, s.session, nil, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TearDownTest() {
	s.service.Close()
}

var fightClub = model.Favorite{ID: 550, Title: "Fight Club", VoteAverage: 8.4}

func (s *ServiceSuite) TestAddPersistsUnderIdentity() {
	s.session.Login(model.Identity{ID: "U1"})

	s.Require().NoError(s.service.Add(s.ctx, fightClub))

	s.True(s.service.IsFavorite(550))
	raw, found, err := s.storage.Get(s.ctx, storage.KeyFavorites)
	s.Require().NoError(err)
	s.True(found)
	s.JSONEq(`{"U1":[{"id":550,"title":"Fight Club","poster_path":"","vote_average":8.4,"release_date":"","overview":"","original_title":"","vote_count":0}]}`, raw)
}

func (s *ServiceSuite) TestFavoritesArePerIdentity() {
	s.session.Login(model.Identity{ID: "U1"})
	_ = s.service.Add(s.ctx, fightClub)

	s.session.Login(model.Identity{ID: "U2"})
	s.False(s.service.IsFavorite(550))
	s.Empty(s.service.List())

	s.session.Login(model.Identity{ID: "U1"})
	s.Equal([]model.Favorite{fightClub}, s.service.List())
}

func (s *ServiceSuite) TestDuplicateAddKeepsFirst() {
	s.session.Login(model.Identity{ID: "U1"})
	_ = s.service.Add(s.ctx, fightClub)

	renamed := fightClub
	renamed.Title = "Other"
	_ = s.service.Add(s.ctx, renamed)

	s.Equal([]model.Favorite{fightClub}, s.service.List())
}

func (s *ServiceSuite) TestRemove() {
	s.session.Login(model.Identity{ID: "U1"})
	_ = s.service.Add(s.ctx, fightClub)

	s.Require().NoError(s.service.Remove(s.ctx, 550))

	s.False(s.service.IsFavorite(550))
	s.Empty(s.service.List())
}

func (s *ServiceSuite) TestAddWithoutSessionIsIgnored() {
	s.NoError(s.service.Add(s.ctx, fightClub))

	s.Empty(s.service.List())
	s.Equal(0, s.storage.Len())
}

func (s *ServiceSuite) TestSubscribe() {
	var lengths []int
	unsubscribe := s.service.Subscribe(func(f []model.Favorite) { lengths = append(lengths, len(f)) })
	defer unsubscribe()

	s.session.Login(model.Identity{ID: "U1"})
	_ = s.service.Add(s.ctx, fightClub)
	s.session.Logout()

	s.Equal([]int{0, 0, 1, 0}, lengths)
}
