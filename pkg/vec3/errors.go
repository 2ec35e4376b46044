package vec3

import "errors"

// Decoding errors
var (
	ErrInvalidFormat      = errors.New("invalid vector format")
	ErrComponentCount     = errors.New("vector must have exactly 3 components")
	ErrInvalidComponent   = errors.New("invalid vector component")
	ErrUnknownKey         = errors.New("unknown vector component key")
	ErrDuplicateComponent = errors.New("vector component set twice")
)
