package repository

import "errors"

var (
	// ErrUserExists is returned when creating a user whose username is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the given username.
	ErrUserNotFound = errors.New("user not found")
	// ErrSessionNotFound is returned when a token has no recorded session.
	ErrSessionNotFound = errors.New("session not found")
	// ErrTaskNotFound is returned when no task matches the given id and owner
	// scope. A wrong id and a wrong owner are deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")
)
