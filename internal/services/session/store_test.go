package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/moviecat/internal/model"
	"github.com/mcoot/moviecat/internal/testutil"
)

func TestNewStoreIsAnonymous(t *testing.T) {
	s := New(testutil.NopLogger())

	current := s.Current()
	assert.False(t, current.IsAuthenticated)
	assert.Nil(t, current.Identity)

	_, ok := current.ActiveIdentityID()
	assert.False(t, ok)
}

func TestLoginSetsIdentity(t *testing.T) {
	s := New(testutil.NopLogger())

	s.Login(model.Identity{ID: "U1", Email: "a@x.com"})

	current := s.Current()
	require.True(t, current.IsAuthenticated)
	assert.Equal(t, model.IdentityID("U1"), current.Identity.ID)

	id, ok := current.ActiveIdentityID()
	assert.True(t, ok)
	assert.Equal(t, model.IdentityID("U1"), id)
}

func TestLogoutClearsIdentity(t *testing.T) {
	s := New(testutil.NopLogger())
	s.Login(model.Identity{ID: "U1"})

	s.Logout()

	assert.Equal(t, model.AnonymousSession(), s.Current())
}

func TestSubscribersReceiveWholeSnapshots(t *testing.T) {
	s := New(testutil.NopLogger())

	var seen []model.Session
	unsubscribe := s.Subscribe(func(sess model.Session) { seen = append(seen, sess) })
	defer unsubscribe()

	s.Login(model.Identity{ID: "U1"})
	s.Login(model.Identity{ID: "U2"})
	s.Logout()

	require.Len(t, seen, 4)
	assert.False(t, seen[0].IsAuthenticated)
	assert.Equal(t, model.IdentityID("U1"), seen[1].Identity.ID)
	assert.Equal(t, model.IdentityID("U2"), seen[2].Identity.ID)
	assert.False(t, seen[3].IsAuthenticated)
}

func TestLoginCopiesIdentity(t *testing.T) {
	s := New(testutil.NopLogger())
	identity := model.Identity{ID: "U1", Username: "alice"}

	s.Login(identity)
	identity.Username = "mallory"

	assert.Equal(t, "alice", s.Current().Identity.Username)
}
