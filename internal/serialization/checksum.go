package serialization

import (
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// ComputeChecksum computes SHA-256 checksum of data.
func ComputeChecksum(data []byte) [32]byte {
	return sha256.Sum256(data)
}

// ComputeChecksumReader computes SHA-256 checksum from an io.Reader.
func ComputeChecksumReader(r io.Reader) ([32]byte, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return [32]byte{}, err
	}
	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum, nil
}

// FileChecksum computes the SHA-256 checksum of the file at path. The
// CLI prints it as a fingerprint of a saved network; the weight format
// itself stores no checksum.
func FileChecksum(path string) ([32]byte, error) {
	//nolint:gosec // G304: File path comes from user input
	file, err := os.Open(path)
	if err != nil {
		return [32]byte{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ComputeChecksumReader(file)
}
