package conv2d

import "sort"

// FindClosestFactor returns the smallest integer n >= minimum that can be
// written as a product of one or more values drawn, with repetition, from
// factors. Values already composed purely of the given factors are returned
// unchanged. Entries less than two are ignored; if nothing usable remains,
// ErrNoUsableFactor is returned since the search could never terminate.
//
// The search scans candidates upward from the minimum, testing each by
// dividing out factors and recursing on the quotient. Greedy division is
// not enough for arbitrary sets (36 over {9,6} fails if 9 is tried first),
// so every dividing factor is explored.
func FindClosestFactor(minimum int, factors []int) (int, error) {
	usable := usableFactors(factors)
	if len(usable) == 0 {
		return 0, ErrNoUsableFactor
	}

	n := minimum
	if n < usable[0] {
		// The smallest reachable value is the smallest factor itself.
		n = usable[0]
	}
	for ; ; n++ {
		if composable(n, usable) {
			return n, nil
		}
	}
}

// usableFactors returns the values of factors that are >= 2, sorted
// ascending with duplicates removed.
func usableFactors(factors []int) []int {
	usable := make([]int, 0, len(factors))
	for _, f := range factors {
		if f >= 2 {
			usable = append(usable, f)
		}
	}
	sort.Ints(usable)

	out := usable[:0]
	for i, f := range usable {
		if i == 0 || f != usable[i-1] {
			out = append(out, f)
		}
	}
	return out
}

// composable reports whether n is a product of one or more values from the
// ascending set usable.
func composable(n int, usable []int) bool {
	for _, f := range usable {
		if f > n {
			return false
		}
		if n == f {
			return true
		}
		if n%f == 0 && composable(n/f, usable) {
			return true
		}
	}
	return false
}
