package service

import "errors"

var (
	// ErrDuplicateIdentity maps the store's unique violation on signup.
	ErrDuplicateIdentity = errors.New("username or email already taken")

	// ErrInvalidCredentials is the single outcome for every failed login.
	// It never reveals whether the username existed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized: acting identity missing or not the resource owner.
	ErrUnauthorized = errors.New("access unauthorized")

	ErrActivityNotFound = errors.New("activity not found")
)
