package rsacore

import (
	"fmt"
	"math/big"
)

var (
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
	bigFive  = big.NewInt(5)
	bigSix   = big.NewInt(6)
)

// IsProbablePrime runs a Miller-Rabin primality test. Only 2, 3 and 5 are
// unconditionally prime; 0, 1 and 4 are unconditionally composite.
//
// Witnesses are drawn from the OS entropy source, one per round, not from
// a wall-clock-seeded PRNG. Opening or reading that source is the only way
// this function can fail, and its signature has no error return, so a failure
// to open or read the OS entropy source panics wrapping ErrEntropy. In
// practice this path is only reached for n >= smallPrimeBound, since every
// prime or composite below that bound is resolved by the trial-division
// prefilter without needing a single witness.
func IsProbablePrime(n *big.Int, rounds int) bool {
	if n.Sign() == 0 {
		return false
	}
	if n.Cmp(bigSix) < 0 {
		return n.Cmp(bigTwo) == 0 || n.Cmp(bigThree) == 0 || n.Cmp(bigFive) == 0
	}
	if n.Bit(0) == 0 {
		return false
	}

	for _, p := range smallPrimes {
		bp := big.NewInt(p)
		if n.Cmp(bp) == 0 {
			return true
		}
		if new(big.Int).Mod(n, bp).Sign() == 0 {
			return false
		}
	}

	src, err := newEntropySource()
	if err != nil {
		panic(fmt.Errorf("rsacore: IsProbablePrime: %w", err))
	}
	defer src.Close()

	return millerRabin(n, rounds, src)
}

// millerRabin runs the witness loop against a candidate that has already
// survived trial division.
func millerRabin(n *big.Int, rounds int, src entropySource) bool {
	nMinusOne := new(big.Int).Sub(n, bigOne)

	s := new(big.Int).Set(nMinusOne)
	r := 0
	for s.Bit(0) == 0 {
		s.Rsh(s, 1)
		r++
	}

	// witnesses are drawn uniformly from [2, n-2], a range of size n-3
	witnessRange := new(big.Int).Sub(n, bigThree)

	for i := 0; i < rounds; i++ {
		offset, err := randomBigInt(src, witnessRange)
		if err != nil {
			panic(fmt.Errorf("rsacore: IsProbablePrime: %w", err))
		}
		a := new(big.Int).Add(offset, bigTwo)

		x := PowMod(a, s, n)
		if x.Cmp(bigOne) == 0 || x.Cmp(nMinusOne) == 0 {
			continue
		}

		composite := true
		for j := 0; j < r-1; j++ {
			x = PowMod(x, bigTwo, n)
			if x.Cmp(bigOne) == 0 {
				return false
			}
			if x.Cmp(nMinusOne) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
