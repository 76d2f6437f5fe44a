package prefs

// NextPerm advances p in place to its lexicographic successor and reports
// whether one existed. Starting from Identity(c) and stepping until NextPerm
// returns false visits all c! permutations exactly once, identity first.
//
// The classic pivot/successor/reverse-suffix scheme:
//  1. Find the rightmost i with p[i] < p[i+1]; none means p is the last
//     permutation — restore ascending order and report false.
//  2. Swap p[i] with the rightmost element greater than it.
//  3. Reverse the suffix after i.
func NextPerm(p Pref) bool {
	n := len(p)
	i := n - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		reverse(p)

		return false
	}
	j := n - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	reverse(p[i+1:])

	return true
}

func reverse(p Pref) {
	for l, r := 0, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}
}
