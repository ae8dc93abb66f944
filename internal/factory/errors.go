package factory

import "errors"

// ErrInvalidArgument is returned for enum values no recipe or image knows about.
var ErrInvalidArgument = errors.New("factory: invalid argument")
