package catalog

import "errors"

var ErrUnknownParticle = errors.New("unknown particle")
