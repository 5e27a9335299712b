package study

import "errors"

var (
	ErrMissingTaskName = errors.New("task_name is required")
	ErrSessionNotFound = errors.New("session not found")
	ErrEmptySession    = errors.New("session payload is empty")
	ErrInvalidPayload  = errors.New("invalid payload")
)
