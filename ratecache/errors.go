package ratecache

import "errors"

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrBadRate         = errors.New("emission rate is not finite")
	ErrNoEmission      = errors.New("no emission function")
)
