package request

// RegisterRequest is the request body for registering an identity
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddFavoriteRequest is the request body for adding a favorite; it carries
// the catalog fields of the movie
type AddFavoriteRequest struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	PosterPath    string  `json:"poster_path"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	Overview      string  `json:"overview"`
	OriginalTitle string  `json:"original_title"`
	VoteCount     int     `json:"vote_count"`
}

// VoteRequest is the request body for rating a movie
type VoteRequest struct {
	Value *float64 `json:"value"`
}

// SetThemeRequest is the request body for changing the theme
type SetThemeRequest struct {
	Theme string `json:"theme"`
}
