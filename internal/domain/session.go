package domain

import "time"

// Session maps an issued bearer token to the username it authenticates.
// A user may hold any number of concurrent sessions; sessions never expire
// for the lifetime of the process.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
}
