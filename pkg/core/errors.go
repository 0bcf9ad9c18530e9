package core

import "errors"

// Common errors.
var (
	ErrInvalidRecord   = errors.New("invalid record")
	ErrNotFound        = errors.New("record not found")
	ErrNameTaken       = errors.New("name already in use")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidBirthday = errors.New("invalid birthday")
	ErrInvalidNote     = errors.New("invalid note")
	ErrReadOnly        = errors.New("book is in read-only mode")
)
