package model

// IdentityID uniquely identifies a registered identity
type IdentityID string

// Identity is a registered user account.
// Password is kept in clear text to stay compatible with existing stored data.
type Identity struct {
	ID       IdentityID `json:"id"`
	Username string     `json:"username"`
	Email    string     `json:"email"`
	Password string     `json:"password"`
}

// Registration holds the caller-supplied fields for a new identity
type Registration struct {
	Username string
	Email    string
	Password string
}
