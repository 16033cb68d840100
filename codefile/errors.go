package codefile

import "errors"

var (
	// ErrInvalidIndex reports an index outside [0, Len()).
	ErrInvalidIndex = errors.New("codefile: invalid index")

	// ErrNoFiles reports an accessor call on an empty collection.
	ErrNoFiles = errors.New("codefile: no files")
)
