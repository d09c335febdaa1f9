package domain

import "errors"

var (
	// ErrConfiguration is returned for an unknown strategy, an unknown mutator
	// kind or a negative count.
	ErrConfiguration = errors.New("invalid mutator configuration")

	// ErrSequence is returned when a test case stage runs before its
	// prerequisite stage completed.
	ErrSequence = errors.New("test case stage out of order")
)
