package model

import "errors"

// ErrInvalidInput marks a missing or empty required field. Callers wrap it with
// the field name; the HTTP layer maps it to 400.
var ErrInvalidInput = errors.New("invalid input")
