package rsacore

import (
	"context"
	"math/big"
	"sync"
)

// forceCandidateBits sets the two highest bits and the lowest bit of a
// random block before it is tested: the two top bits keep the candidate's
// width from collapsing when two primes of the same nominal size are
// multiplied together, and the low bit rules out spending a witness round
// on an even number.
func forceCandidateBits(block []byte) {
	if len(block) == 0 {
		return
	}
	block[0] |= 0xc0
	block[len(block)-1] |= 0x01
}

// findPrime drives candidate generation and testing until one probable
// prime is produced, using a batched fan-out/fan-in protocol: the entropy
// source is opened once for the call, each batch of params.BatchSize
// candidates is tested by an independent goroutine writing into its own
// verdict slot, the dispatcher joins the whole batch before looking at any
// verdict, and ties are broken by picking the lowest-indexed accepted
// candidate.
func findPrime(ctx context.Context, params Params) (*big.Int, error) {
	src, err := newEntropySource()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		candidates := make([]*big.Int, params.BatchSize)
		for i := range candidates {
			block, err := readRandomBlock(src, params.KeyBytes)
			if err != nil {
				return nil, err
			}
			forceCandidateBits(block)
			candidates[i] = Numbify(block)
		}

		verdicts := make([]bool, params.BatchSize)
		var wg sync.WaitGroup
		wg.Add(len(candidates))
		for i, candidate := range candidates {
			go func(i int, candidate *big.Int) {
				defer wg.Done()
				verdicts[i] = IsProbablePrime(candidate, params.MRRounds)
			}(i, candidate)
		}
		wg.Wait()

		for i, accepted := range verdicts {
			if accepted {
				return new(big.Int).Set(candidates[i]), nil
			}
		}
		// No candidate in this batch survived; the batch (and its
		// backing big.Ints) is simply dropped here and a fresh one is
		// drawn on the next iteration.
	}
}
