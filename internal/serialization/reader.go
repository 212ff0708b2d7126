package serialization

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// WeightReader reads a weight file.
type WeightReader struct {
	file   *os.File
	size   int64
	closed bool
}

// NewWeightReader opens the weight file at path.
//
// Returns an error wrapping ErrNoSavedWeights if the file does not exist.
func NewWeightReader(path string) (*WeightReader, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for weight loading
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNoSavedWeights, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	return &WeightReader{
		file: file,
		size: info.Size(),
	}, nil
}

// NumValues returns how many whole values the file holds.
func (r *WeightReader) NumValues() int {
	return int(r.size / ValueSize)
}

// ReadValues reads the next n values.
//
// Returns an error wrapping ErrTruncated if fewer than n values remain.
// Bytes beyond the n-th value are left unread.
func (r *WeightReader) ReadValues(n int) ([]float64, error) {
	if r.closed {
		return nil, ErrClosed
	}
	return ReadValues(r.file, n)
}

// Close closes the file.
func (r *WeightReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}
