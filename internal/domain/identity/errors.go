package identity

import "errors"

var (
	ErrIdentityNotFound = errors.New("identity not found")
	ErrLoginTaken       = errors.New("login already taken")
	ErrEmailTaken       = errors.New("email already taken")
	ErrUnknownRole      = errors.New("unknown role")
)
