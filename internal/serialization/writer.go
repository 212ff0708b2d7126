package serialization

import (
	"crypto/sha256"
	"fmt"
	"hash"
	"io"
	"os"
)

// WeightWriter writes a weight file.
type WeightWriter struct {
	file   *os.File
	out    io.Writer
	sum    hash.Hash
	count  int
	closed bool
}

// NewWeightWriter creates (or truncates) the weight file at path.
func NewWeightWriter(path string) (*WeightWriter, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for weight saving
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	sum := sha256.New()
	return &WeightWriter{
		file: file,
		out:  io.MultiWriter(file, sum),
		sum:  sum,
	}, nil
}

// WriteValues appends values to the file.
func (w *WeightWriter) WriteValues(values []float64) error {
	if w.closed {
		return ErrClosed
	}
	if err := WriteValues(w.out, values); err != nil {
		return err
	}
	w.count += len(values)
	return nil
}

// Count returns the number of values written so far.
func (w *WeightWriter) Count() int {
	return w.count
}

// Checksum returns the SHA-256 of everything written so far.
func (w *WeightWriter) Checksum() [32]byte {
	var out [32]byte
	copy(out[:], w.sum.Sum(nil))
	return out
}

// Close flushes and closes the file.
func (w *WeightWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if err := w.file.Sync(); err != nil {
		_ = w.file.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	return w.file.Close()
}
