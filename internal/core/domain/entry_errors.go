package domain

import "errors"

var (
	ErrEntryNotFound = errors.New("entry not found")
	ErrUnauthorized  = errors.New("unauthorized")
)
