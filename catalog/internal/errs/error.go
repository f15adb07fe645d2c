package errs

import (
	"errors"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPageNotFound       = errors.New("invalid page")
	ErrConflict           = errors.New("record is referenced by other records")
	ErrInvalidReference   = errors.New("referenced record does not exist")
	ErrInvalidCredentials = errors.New("please enter a correct username and password")
	ErrUserName           = errors.New("username is required")
	ErrUnknownPermission  = errors.New("unknown permission")
)
