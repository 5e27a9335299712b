package store

import "errors"

var (
	ErrUnknownSheet  = errors.New("unknown sheet")
	ErrUnknownColumn = errors.New("unknown column")
	ErrEmptyValues   = errors.New("values must not be empty")
	ErrRowNotFound   = errors.New("no row matched")
)
