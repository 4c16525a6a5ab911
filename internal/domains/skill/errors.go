package skill

import "errors"

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrNotOwner      = errors.New("skill belongs to another user")
)
