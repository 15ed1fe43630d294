package domain

import "errors"

var (
	// ErrUnauthenticated means no user matched the presented access token.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrInvalidCredentials means the username/password pair did not match.
	ErrInvalidCredentials = errors.New("wrong username or password")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// ErrPasswordTooShort is the typed replacement for signup validation;
	// passwords must be at least five characters.
	ErrPasswordTooShort = errors.New("password must be at least 5 characters")
)
