package core

import "errors"

var (
	ErrEmptyPool     = errors.New("no heroes configured for this role")
	ErrImageNotFound = errors.New("hero image not found")
)
