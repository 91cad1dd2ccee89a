package rsacore

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumbify(t *testing.T) {
	t.Run("concrete scenario", func(t *testing.T) {
		got := Numbify([]byte("HELLO WORLD"))
		want, ok := new(big.Int).SetString("87369909750770137432214596", 10)
		require.True(t, ok)
		require.Equal(t, 0, want.Cmp(got))
	})

	t.Run("empty input is zero", func(t *testing.T) {
		got := Numbify(nil)
		require.Equal(t, 0, got.Sign())
	})
}

func TestDenumbify(t *testing.T) {
	t.Run("concrete scenario", func(t *testing.T) {
		got, err := Denumbify("87369909750770137432214596")
		require.NoError(t, err)
		require.Equal(t, "HELLO WORLD", string(got))
	})

	t.Run("rejects non-decimal input", func(t *testing.T) {
		_, err := Denumbify("not a number")
		require.ErrorIs(t, err, ErrParse)
	})

	t.Run("round-trips through Numbify for strings without leading zero bytes", func(t *testing.T) {
		inputs := []string{"a", "hello world", "The quick brown fox.", "1234567890"}
		for _, in := range inputs {
			n := Numbify([]byte(in))
			out, err := Denumbify(n.Text(10))
			require.NoError(t, err)
			require.Equal(t, in, string(out))
		}
	})
}
