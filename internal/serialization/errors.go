package serialization

import "errors"

// Common errors.
var (
	ErrNoSavedWeights = errors.New("no saved network to load")
	ErrTruncated      = errors.New("weight file is shorter than the network")
	ErrClosed         = errors.New("weight file is closed")
)
