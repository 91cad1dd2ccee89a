//go:build windows

package rsacore

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// osEntropySource on Windows has no handle to retain: windows.ProcessPrng
// (the maintained replacement for the deprecated CryptGenRandom/
// RtlGenRandom calls) is stateless from the caller's perspective, so each
// Read is an independent syscall.
type osEntropySource struct{}

func newEntropySource() (*osEntropySource, error) {
	return &osEntropySource{}, nil
}

func (s *osEntropySource) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := windows.ProcessPrng(p); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrEntropy, err)
	}
	return len(p), nil
}

func (s *osEntropySource) Close() error {
	return nil
}
