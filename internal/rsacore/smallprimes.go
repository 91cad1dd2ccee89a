package rsacore

// smallPrimeBound is the trial-division ceiling: candidates divisible by
// any odd prime below this bound are rejected before the expensive
// Miller-Rabin witness loop runs.
const smallPrimeBound = 5000

// smallPrimes holds every odd prime below smallPrimeBound, computed once at
// package init via a sieve of Eratosthenes rather than hand-typed as a
// literal — the sieve is a handful of lines and cannot be transcribed
// wrong, unlike a 668-entry list.
var smallPrimes = sieveOddPrimesBelow(smallPrimeBound)

func sieveOddPrimesBelow(n int) []int64 {
	composite := make([]bool, n)
	var primes []int64
	for i := 2; i < n; i++ {
		if composite[i] {
			continue
		}
		if i != 2 {
			primes = append(primes, int64(i))
		}
		for j := i * i; j < n && j > 0; j += i {
			composite[j] = true
		}
	}
	return primes
}
