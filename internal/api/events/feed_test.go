package events_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/moviecat/internal/api/response"
	"github.com/mcoot/moviecat/internal/factory"
	"github.com/mcoot/moviecat/internal/model"
)

type streamEvent struct {
	name string
	data string
}

type FeedSuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	ctx    context.Context
}

func TestFeedSuite(t *testing.T) {
	suite.Run(t, new(FeedSuite))
}

func (s *FeedSuite) SetupTest() {
	s.app = factory.NewTestApp("http://catalog.invalid", nil)
	s.server = httptest.NewServer(s.app.Events)
	s.ctx = context.Background()
}

func (s *FeedSuite) TearDownTest() {
	s.server.Close()
	s.app.Close()
}

// open connects to the stream and returns a channel of parsed events
func (s *FeedSuite) open() (<-chan streamEvent, context.CancelFunc) {
	ctx, cancel := context.WithCancel(s.ctx)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.server.URL, nil)
	s.Require().NoError(err)

	resp, err := s.server.Client().Do(req)
	s.Require().NoError(err)
	s.Equal("text/event-stream", resp.Header.Get("Content-Type"))

	out := make(chan streamEvent, 32)
	go func() {
		defer close(out)
		defer func() { _ = resp.Body.Close() }()

		reader := bufio.NewReader(resp.Body)
		var current streamEvent
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			line = strings.TrimRight(line, "\n")
			switch {
			case strings.HasPrefix(line, "event: "):
				current.name = strings.TrimPrefix(line, "event: ")
			case strings.HasPrefix(line, "data: "):
				current.data += strings.TrimPrefix(line, "data: ")
			case line == "" && current.name != "":
				out <- current
				current = streamEvent{}
			}
		}
	}()
	return out, cancel
}

func (s *FeedSuite) next(events <-chan streamEvent) streamEvent {
	select {
	case e, ok := <-events:
		s.Require().True(ok, "stream ended")
		return e
	case <-time.After(2 * time.Second):
		s.FailNow("no event received")
		return streamEvent{}
	}
}

func (s *FeedSuite) TestSnapshotOnConnect() {
	events, cancel := s.open()
	defer cancel()

	var names []string
	for range 4 {
		names = append(names, s.next(events).name)
	}
	s.Equal([]string{"session", "favorites", "ratings", "theme"}, names)
}

func (s *FeedSuite) TestChangesAreStreamed() {
	u1, err := s.app.Identity.Register(s.ctx, model.Registration{Username: "user", Email: "a@x.com", Password: "p"})
	s.Require().NoError(err)

	events, cancel := s.open()
	defer cancel()
	for range 4 {
		s.next(events)
	}

	s.app.Session.Login(*u1)

	// Scoped stores resync before the session event is published
	s.Equal("favorites", s.next(events).name)
	s.Equal("ratings", s.next(events).name)
	sess := s.next(events)
	s.Equal("session", sess.name)
	var sessBody response.Session
	s.Require().NoError(json.Unmarshal([]byte(sess.data), &sessBody))
	s.True(sessBody.IsAuthenticated)

	s.Require().NoError(s.app.Favorites.Add(s.ctx, model.Favorite{ID: 550, Title: "Fight Club"}))
	fav := s.next(events)
	s.Equal("favorites", fav.name)
	s.JSONEq(`{"favorites":[{"id":550,"title":"Fight Club","poster_path":"","vote_average":0,"release_date":"","overview":"","original_title":"","vote_count":0}]}`, fav.data)

	s.app.Theme.Toggle()
	th := s.next(events)
	s.Equal("theme", th.name)
	s.JSONEq(`{"theme":"light","classes":["light"]}`, th.data)
}

func (s *FeedSuite) TestCloseEndsStreams() {
	events, cancel := s.open()
	defer cancel()
	for range 4 {
		s.next(events)
	}
	s.Eventually(func() bool { return s.app.Events.Clients() == 1 }, time.Second, 5*time.Millisecond)

	s.app.Events.Close()

	select {
	case _, ok := <-events:
		s.False(ok)
	case <-time.After(2 * time.Second):
		s.Fail("stream still open after Close")
	}
}
