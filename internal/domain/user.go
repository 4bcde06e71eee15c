package domain

import "time"

// User represents a registered user of the system. Users are immutable after
// registration; there is no password-change operation.
type User struct {
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
