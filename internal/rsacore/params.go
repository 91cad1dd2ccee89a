package rsacore

// Params bundles the tunable constants for key generation so tests can
// shrink them without touching any algorithm. Production callers should
// use DefaultParams.
type Params struct {
	// KeyBytes is the width, in bytes, of a single prime candidate. The
	// canonical value of 128 yields ~1024-bit primes and a ~2048-bit
	// modulus.
	KeyBytes int

	// MRRounds is the number of Miller-Rabin witness rounds run against
	// each candidate that survives trial division.
	MRRounds int

	// BatchSize is the number of candidates drawn and tested concurrently
	// per round of the parallel prime search.
	BatchSize int

	// PublicExponent is the fixed RSA public exponent e.
	PublicExponent int64
}

// DefaultParams returns the canonical parameters:
// 128-byte candidates, 40 Miller-Rabin rounds, batches of 100, e = 65537.
func DefaultParams() Params {
	return Params{
		KeyBytes:       128,
		MRRounds:       40,
		BatchSize:      100,
		PublicExponent: 65537,
	}
}
