package spectrum

import "errors"

var (
	ErrInvalidRange = errors.New("invalid input energy range")
	ErrNoRates      = errors.New("no rate source")
)
