package mat

import "errors"

var (
	ErrUnknownBacking = errors.New("unknown backing store")
)
