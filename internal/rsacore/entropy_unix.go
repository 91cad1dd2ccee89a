//go:build !windows

package rsacore

import (
	"fmt"
	"io"
	"os"
)

// urandomDevice mirrors the standard library's own crypto/rand Unix
// reader: open /dev/urandom once and read from it with io.ReadFull,
// failing loudly on a short read instead of silently returning fewer
// bytes than requested.
const urandomDevice = "/dev/urandom"

type osEntropySource struct {
	f *os.File
}

func newEntropySource() (*osEntropySource, error) {
	f, err := os.Open(urandomDevice)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return &osEntropySource{f: f}, nil
}

func (s *osEntropySource) Read(p []byte) (int, error) {
	n, err := io.ReadFull(s.f, p)
	if err != nil {
		return n, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return n, nil
}

func (s *osEntropySource) Close() error {
	return s.f.Close()
}
