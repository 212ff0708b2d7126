package serialization

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// ValueSize is the size in bytes of one stored value.
const ValueSize = 8

// ByteOrder is the byte order of stored values: the host's native order.
var ByteOrder binary.ByteOrder = binary.NativeEndian

// WriteValues encodes values to w in the weight file layout.
func WriteValues(w io.Writer, values []float64) error {
	buf := make([]byte, len(values)*ValueSize)
	for i, v := range values {
		ByteOrder.PutUint64(buf[i*ValueSize:], math.Float64bits(v))
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("failed to write %d values: %w", len(values), err)
	}
	return nil
}

// ReadValues decodes exactly n values from r.
//
// Returns ErrTruncated if r ends before n values were read.
func ReadValues(r io.Reader, n int) ([]float64, error) {
	if n < 0 {
		return nil, fmt.Errorf("negative value count %d", n)
	}

	buf := make([]byte, n*ValueSize)
	if got, err := io.ReadFull(r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: got %d of %d values", ErrTruncated, got/ValueSize, n)
		}
		return nil, fmt.Errorf("failed to read values: %w", err)
	}

	values := make([]float64, n)
	for i := range values {
		values[i] = math.Float64frombits(ByteOrder.Uint64(buf[i*ValueSize:]))
	}
	return values, nil
}
