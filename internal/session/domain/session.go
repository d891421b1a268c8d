package domain

import "time"

// Session is one authenticated storefront visit. Credential checks happen
// upstream; a session existing here is the signal that the user is signed in.
type Session struct {
	ID        string
	Email     string
	CreatedAt time.Time
}
