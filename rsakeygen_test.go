package rsakeygen

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateKeyRoundTrip(t *testing.T) {
	params := DefaultParams()
	params.KeyBytes = 8 // keep the test fast; same algorithms as production
	params.BatchSize = 64

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	key, err := GenerateKeyWithParams(ctx, params)
	require.NoError(t, err)

	m := Numbify([]byte("HELLO WORLD"))
	if m.Cmp(key.N) >= 0 {
		t.Skip("modulus too small for this message at the shrunken test size")
	}

	ciphertext := PowMod(m, key.E, key.N)
	decimal, err := Denumbify(ciphertext.Text(10))
	require.NoError(t, err)
	require.NotEmpty(t, decimal)

	recovered := PowMod(ciphertext, key.D, key.N)
	require.Equal(t, 0, m.Cmp(recovered))

	plaintext, err := Denumbify(recovered.Text(10))
	require.NoError(t, err)
	require.Equal(t, "HELLO WORLD", string(plaintext))
}

func TestIsProbablePrimeExported(t *testing.T) {
	require.True(t, IsProbablePrime(big.NewInt(23), 40))
	require.False(t, IsProbablePrime(big.NewInt(420), 40))
}

func TestModInverseExported(t *testing.T) {
	got, err := ModInverse(big.NewInt(38), big.NewInt(97))
	require.NoError(t, err)
	require.Equal(t, big.NewInt(23), got)
}
