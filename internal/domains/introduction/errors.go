package introduction

import "errors"

var (
	ErrIntroductionNotFound = errors.New("introduction not found")
)
