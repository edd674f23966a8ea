package dict

import (
	"github.com/npillmayer/elmkit/basics"
)

// Merge combines two dictionaries into a single accumulated result. Every key
// present in either dictionary is visited exactly once, in ascending key order,
// and handed to one of three step functions:
//
//   1. leftStep, for keys appearing in the left dictionary only,
//   2. bothStep, for keys appearing in both (left value first),
//   3. rightStep, for keys appearing in the right dictionary only.
//
// The traversal walks both dictionaries' ascending key sequences in lockstep,
// threading the not-yet-consumed remainder of the left sequence as loop state
// while folding over the right one. This keeps the whole merge linear in
// |left| + |right|, as opposed to a lookup per key.
//
// Merge is total: with both dictionaries empty it returns initial unchanged.
// The step functions are applied in the guaranteed order described above; a
// panic inside a step function propagates unmodified.
func Merge[K basics.Ordered, A, B, R any](
	leftStep func(K, A, R) R,
	bothStep func(K, A, B, R) R,
	rightStep func(K, B, R) R,
	left Dict[K, A],
	right Dict[K, B],
	initial R,
) R {
	leftovers := left.ToList() // ascending, consumed front to back
	acc := Foldl(func(rkey K, rvalue B, acc R) R {
		// drain left entries strictly below the current right key
		for len(leftovers) > 0 && leftovers[0].First < rkey {
			acc = leftStep(leftovers[0].First, leftovers[0].Second, acc)
			leftovers = leftovers[1:]
		}
		if len(leftovers) > 0 && leftovers[0].First == rkey {
			acc = bothStep(rkey, leftovers[0].Second, rvalue, acc)
			leftovers = leftovers[1:]
			return acc
		}
		// left cursor is exhausted or still above rkey; it stays put
		return rightStep(rkey, rvalue, acc)
	}, initial, right)
	// whatever the right fold did not consume is left-only
	for _, p := range leftovers {
		acc = leftStep(p.First, p.Second, acc)
	}
	return acc
}
