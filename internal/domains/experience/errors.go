package experience

import "errors"

var (
	ErrExperienceNotFound = errors.New("work experience entry not found")
)
