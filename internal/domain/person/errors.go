package person

import "errors"

var (
	ErrNationalIDTaken   = errors.New("national ID already registered")
	ErrInvalidNationalID = errors.New("invalid national ID")
	ErrUnknownKind       = errors.New("unknown person kind")
)
