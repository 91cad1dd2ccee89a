package rsacore

import "math/big"

// Numbify interprets b as a big-endian unsigned integer, turning message
// bytes into an RSA plaintext integer. An empty slice yields zero.
func Numbify(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// Denumbify parses decimal as a base-10 big integer and returns its minimal
// big-endian byte representation. It round-trips Numbify exactly when the
// original byte string had no leading zero byte, since SetBytes/Bytes both
// drop leading zeros.
func Denumbify(decimal string) ([]byte, error) {
	n, ok := new(big.Int).SetString(decimal, 10)
	if !ok {
		return nil, ErrParse
	}
	return n.Bytes(), nil
}
