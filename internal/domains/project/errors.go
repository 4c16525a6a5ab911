package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrDuplicateSlug   = errors.New("a project with this slug already exists")
	ErrInvalidImageIdx = errors.New("image index must be 0 or 1")
)
