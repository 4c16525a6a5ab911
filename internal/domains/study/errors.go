package study

import "errors"

var (
	ErrStudyNotFound = errors.New("study entry not found")
)
