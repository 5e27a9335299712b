package catalog

import "errors"

var (
	ErrSubjectNotFound  = errors.New("subject not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrMissingName      = errors.New("name is required")
	ErrDuplicateName    = errors.New("name already exists")
)
