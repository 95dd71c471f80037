package yield

import "errors"

var (
	ErrInvalidBoundaries = errors.New("invalid regime boundaries")
	ErrRegimeCount       = errors.New("regime table count does not match boundaries")
)
