package tablestore

import "errors"

var (
	ErrLoad       = errors.New("load table failed")
	ErrTextFormat = errors.New("bad text table")
)
