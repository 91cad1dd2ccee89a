// Package rsakeygen is a self-contained RSA keypair generator: arbitrary
// precision modular arithmetic, Miller-Rabin probable-primality testing, a
// parallel batched prime search, and textbook RSA key assembly and
// encrypt/decrypt. It is a teaching core, not a production cryptographic
// library — there is no padding, no ASN.1, no key serialization, and no
// constant-time guarantee anywhere in this package.
package rsakeygen

import (
	"context"
	"math/big"

	"rsakeygen/internal/rsacore"
)

// Params controls the size and cost knobs for key generation.
// Use DefaultParams for the canonical 1024-bit-prime / 40-round / 100-wide
// configuration.
type Params = rsacore.Params

// DefaultParams returns the canonical parameters.
func DefaultParams() Params {
	return rsacore.DefaultParams()
}

// RSAKey is the generated keypair: two probable primes, their product and
// totient, and the public/private exponent pair.
type RSAKey = rsacore.RSAKey

// Sentinel errors surfaced by this package, re-exported from the core so
// callers can errors.Is against them without importing internal/rsacore.
var (
	ErrEntropy       = rsacore.ErrEntropy
	ErrNotInvertible = rsacore.ErrNotInvertible
	ErrParse         = rsacore.ErrParse
	ErrAlloc         = rsacore.ErrAlloc
)

// GenerateKey generates a fresh RSA keypair using DefaultParams. Use
// GenerateKeyWithParams to override the key size or round counts (tests
// typically shrink KeyBytes so the parallel search finishes quickly).
func GenerateKey(ctx context.Context) (*RSAKey, error) {
	return rsacore.GenerateKey(ctx, DefaultParams())
}

// GenerateKeyWithParams generates a fresh RSA keypair using the supplied
// parameters.
func GenerateKeyWithParams(ctx context.Context, params Params) (*RSAKey, error) {
	return rsacore.GenerateKey(ctx, params)
}

// IsProbablePrime reports whether n passes trial division and rounds of
// Miller-Rabin testing, with failure probability at most 4^-rounds.
func IsProbablePrime(n *big.Int, rounds int) bool {
	return rsacore.IsProbablePrime(n, rounds)
}

// PowMod returns base^exp mod mod via right-to-left square-and-multiply.
func PowMod(base, exp, mod *big.Int) *big.Int {
	return rsacore.PowMod(base, exp, mod)
}

// ModInverse returns the multiplicative inverse of a modulo m.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	return rsacore.ModInverse(a, m)
}

// Numbify interprets b as a big-endian unsigned integer.
func Numbify(b []byte) *big.Int {
	return rsacore.Numbify(b)
}

// Denumbify parses a base-10 string and returns its minimal big-endian
// byte representation.
func Denumbify(decimal string) ([]byte, error) {
	return rsacore.Denumbify(decimal)
}
