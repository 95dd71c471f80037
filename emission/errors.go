package emission

import "errors"

var (
	ErrInvalidBlackHole = errors.New("invalid black hole")
	ErrNoGreybody       = errors.New("no greybody tables")
)
