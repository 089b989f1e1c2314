package models

import "time"

// Session is the authenticated client state: both tokens plus a denormalised
// copy of the principal's profile.
type Session struct {
	AccessToken  string
	RefreshToken string
	PrincipalID  string
	IssuedAt     time.Time
	Profile      *User
}

// Valid reports whether both tokens are present. A session missing either
// token must never be persisted.
func (s *Session) Valid() bool {
	return s != nil && s.AccessToken != "" && s.RefreshToken != ""
}
