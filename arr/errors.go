package arr

import "errors"

// ErrInvalidChunkSize is returned by [Chunk] when the group size is below 1.
var ErrInvalidChunkSize = errors.New("arr: chunk size must be at least 1")
