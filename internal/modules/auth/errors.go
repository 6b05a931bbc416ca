package auth

import "errors"

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrNotAdmin         = errors.New("access denied, admin privileges required")
)
