package worksheet

import "errors"

// Worksheet errors
var (
	ErrInvalidStep      = errors.New("invalid step")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrUnknownOp        = errors.New("unknown operation")
	ErrDuplicateOp      = errors.New("operation already registered")
	ErrUnknownRef       = errors.New("unknown reference")
	ErrArity            = errors.New("wrong number of arguments")
	ErrNotVector        = errors.New("argument is not a vector")
	ErrMissingScalar    = errors.New("operation needs a scalar")
	ErrUnexpectedScalar = errors.New("operation does not take a scalar")
)
