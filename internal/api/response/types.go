package response

import (
	"github.com/mcoot/moviecat/internal/model"
)

// Identity represents a registered identity in API responses. The password
// is never returned.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// IdentityFromModel converts a model.Identity to a response Identity
func IdentityFromModel(i *model.Identity) Identity {
	return Identity{
		ID:       string(i.ID),
		Username: i.Username,
		Email:    i.Email,
	}
}

// Session is the active session
type Session struct {
	IsAuthenticated bool      `json:"is_authenticated"`
	Identity        *Identity `json:"identity"`
}

// SessionFromModel converts model.Session
func SessionFromModel(s model.Session) Session {
	resp := Session{IsAuthenticated: s.IsAuthenticated}
	if s.Identity != nil {
		id := IdentityFromModel(s.Identity)
		resp.Identity = &id
	}
	return resp
}

// Favorites is the visible favorites list
type Favorites struct {
	Favorites []model.Favorite `json:"favorites"`
}

// FavoriteStatus reports whether a movie is a favorite
type FavoriteStatus struct {
	MovieID    model.MovieID `json:"movie_id"`
	IsFavorite bool          `json:"is_favorite"`
}

// Ratings is the visible vote list
type Ratings struct {
	Ratings []model.Rating `json:"ratings"`
}

// Vote is the vote of the active identity for one movie
type Vote struct {
	MovieID  model.MovieID `json:"movie_id"`
	Value    float64       `json:"value"`
	HasVoted bool          `json:"has_voted"`
}

// Theme is the active theme and the classes applied to the surface
type Theme struct {
	Theme   model.Theme `json:"theme"`
	Classes []string    `json:"classes"`
}
