package model

import "errors"

var (
	// Account related errors
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("account already exists")

	// Token related errors
	ErrInvalidToken = errors.New("invalid token")

	// Menu related errors
	ErrMenuNotFound = errors.New("menu not found")

	// Access related errors
	ErrUnauthenticated = errors.New("unauthenticated")
)
