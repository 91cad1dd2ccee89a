package rsacore

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// RSAKey is a generated keypair: two distinct probable primes, the
// modulus and totient derived from them, and the fixed public exponent
// paired with its modular inverse. It is built atomically by GenerateKey
// and is immutable afterward.
type RSAKey struct {
	P, Q *big.Int
	N    *big.Int
	Phi  *big.Int
	E    *big.Int
	D    *big.Int
}

// GenerateKey draws two probable primes, retrying on a duplicate or on a
// public exponent that turns out not to be invertible mod φ(n), then
// assembles the key.
func GenerateKey(ctx context.Context, params Params) (*RSAKey, error) {
	for {
		p, err := findPrime(ctx, params)
		if err != nil {
			return nil, err
		}
		q, err := findPrime(ctx, params)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, bigOne),
			new(big.Int).Sub(q, bigOne),
		)
		e := big.NewInt(params.PublicExponent)

		d, err := ModInverse(e, phi)
		if err != nil {
			if errors.Is(err, ErrNotInvertible) {
				continue
			}
			return nil, err
		}

		return &RSAKey{P: p, Q: q, N: n, Phi: phi, E: e, D: d}, nil
	}
}

// Encrypt returns m^E mod N. Its precondition is 0 <= m < n; behavior
// is undefined otherwise (PowMod will still return a value in [0, n), it
// just won't be the plaintext's ciphertext).
func (k *RSAKey) Encrypt(m *big.Int) *big.Int {
	return PowMod(m, k.E, k.N)
}

// Decrypt returns c^D mod N.
func (k *RSAKey) Decrypt(c *big.Int) *big.Int {
	return PowMod(c, k.D, k.N)
}

// EncryptBytes numbifies plaintext and encrypts it, returning the
// ciphertext as a base-10 string.
func (k *RSAKey) EncryptBytes(plaintext []byte) (string, error) {
	m := Numbify(plaintext)
	if m.Cmp(k.N) >= 0 {
		return "", fmt.Errorf("rsacore: plaintext integer has %d bits, modulus has %d: message too large for this key", m.BitLen(), k.N.BitLen())
	}
	return k.Encrypt(m).Text(10), nil
}

// DecryptBytes parses a decimal ciphertext, decrypts it, and returns the
// recovered plaintext bytes.
func (k *RSAKey) DecryptBytes(ciphertextDecimal string) ([]byte, error) {
	c, ok := new(big.Int).SetString(ciphertextDecimal, 10)
	if !ok {
		return nil, ErrParse
	}
	return k.Decrypt(c).Bytes(), nil
}
