package grid

import "errors"

var (
	ErrInsufficientGrid = errors.New("insufficient grid")
	ErrInvalidAxis      = errors.New("invalid axis")
	ErrShapeMismatch    = errors.New("shape mismatch")
)
