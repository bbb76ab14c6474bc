package model

// Session is the single authenticated identity of the running process, or none
type Session struct {
	IsAuthenticated bool
	Identity        *Identity
}

// AnonymousSession returns the empty session
func AnonymousSession() Session {
	return Session{}
}

// ActiveIdentityID returns the identity ID when a session is active
func (s Session) ActiveIdentityID() (IdentityID, bool) {
	if !s.IsAuthenticated || s.Identity == nil {
		return "", false
	}
	return s.Identity.ID, true
}
