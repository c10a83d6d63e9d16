// Package models contains the persistent entities of the server.
package models

import "time"

// User is the sole persistent entity. SessionToken and SessionExpiry are
// set and cleared together: a non-nil token with an expiry in the past is
// treated the same as no session at all.
type User struct {
	ID            string
	Username      string
	PasswordHash  string
	SessionToken  *string
	SessionExpiry *time.Time
	CreatedAt     time.Time
}

// HasActiveSession reports whether the user holds a session token that is
// still valid at the given instant.
func (u *User) HasActiveSession(now time.Time) bool {
	return u.SessionToken != nil && u.SessionExpiry != nil && u.SessionExpiry.After(now)
}
