package errs

import "errors"

// Sentinel error kinds shared by the domain and usecase layers
var (
	// ErrInvalidArgument marks input a domain operation refuses to accept,
	// such as a non-finite price or discount factor.
	ErrInvalidArgument = errors.New("invalid argument")
)
