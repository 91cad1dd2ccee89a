package rsacore

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestForceCandidateBits(t *testing.T) {
	t.Run("sets top two bits and bottom bit", func(t *testing.T) {
		block := make([]byte, 4)
		forceCandidateBits(block)
		require.Equal(t, byte(0xc0), block[0]&0xc0)
		require.Equal(t, byte(0x01), block[len(block)-1]&0x01)
	})

	t.Run("empty block is a no-op", func(t *testing.T) {
		require.NotPanics(t, func() {
			forceCandidateBits(nil)
		})
	})
}

func TestFindPrime(t *testing.T) {
	// Small KeyBytes keeps this test fast: candidates are narrow enough
	// that a batch of BatchSize almost always contains a probable prime.
	params := Params{KeyBytes: 4, MRRounds: 20, BatchSize: 50, PublicExponent: 65537}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	p, err := findPrime(ctx, params)
	require.NoError(t, err)
	require.NotNil(t, p)
	require.True(t, IsProbablePrime(p, 40))
	require.True(t, p.Bit(0) == 1, "candidate must be odd")
}

func TestFindPrimeRespectsCancellation(t *testing.T) {
	params := Params{KeyBytes: 128, MRRounds: 40, BatchSize: 100, PublicExponent: 65537}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := findPrime(ctx, params)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRandomBigIntStaysInRange(t *testing.T) {
	src, err := newEntropySource()
	require.NoError(t, err)
	defer src.Close()

	max := big.NewInt(1000)
	for i := 0; i < 200; i++ {
		n, err := randomBigInt(src, max)
		require.NoError(t, err)
		require.True(t, n.Sign() >= 0)
		require.True(t, n.Cmp(max) < 0)
	}
}
