package rsacore

import "math/big"

var (
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
)

// PowMod returns base^exp mod mod using right-to-left square-and-multiply.
// It never delegates to (*big.Int).Exp — it is built from the primitive
// big.Int operations (Mod, Mul, Rsh, Bit) directly.
//
// mod must be positive; PowMod panics otherwise, mirroring the contract
// violation policy for a malformed modulus. When mod == 1 the result is
// always 0. Neither base, exp nor mod is mutated.
func PowMod(base, exp, mod *big.Int) *big.Int {
	if mod.Sign() <= 0 {
		panic("rsacore: PowMod requires mod >= 1")
	}
	if mod.Cmp(bigOne) == 0 {
		return big.NewInt(0)
	}

	e := new(big.Int).Set(exp)
	s := new(big.Int).Mod(base, mod) // running square, reduced into [0, mod)
	a := big.NewInt(1)               // accumulator

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			a.Mul(a, s)
			a.Mod(a, mod)
		}
		e.Rsh(e, 1)
		s.Mul(s, s)
		s.Mod(s, mod)
	}
	return a
}

// ModInverse returns the unique x in [0, m) with a*x ≡ 1 (mod m), via the
// iterative extended Euclidean substitution described in the
// specification, never via (*big.Int).ModInverse. It returns
// ErrNotInvertible when gcd(a, m) != 1, and 1 when m == 1 (every integer is
// congruent to 0 mod 1, so the relation is trivially satisfiable).
func ModInverse(a, m *big.Int) (*big.Int, error) {
	if m.Sign() <= 0 {
		panic("rsacore: ModInverse requires m >= 1")
	}
	if m.Cmp(bigOne) == 0 {
		return big.NewInt(1), nil
	}

	mOrig := new(big.Int).Set(m)
	aCur := new(big.Int).Mod(a, m)
	if aCur.Sign() == 0 {
		return nil, ErrNotInvertible
	}
	mCur := new(big.Int).Set(m)

	inv := big.NewInt(1)
	x0 := big.NewInt(0)

	q := new(big.Int)
	r := new(big.Int)
	t := new(big.Int)

	for aCur.Cmp(bigOne) > 0 {
		if mCur.Sign() == 0 {
			return nil, ErrNotInvertible
		}

		q.DivMod(aCur, mCur, r)

		t.Mul(q, x0)
		inv.Sub(inv, t)

		aCur.Set(mCur)
		mCur.Set(r)
		inv, x0 = x0, inv
	}

	if inv.Sign() < 0 {
		inv.Add(inv, mOrig)
	}
	return inv, nil
}
