package hybrid

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrBadFitShape     = errors.New("bad fit parameters shape")
)
