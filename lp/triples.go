package lp

import "github.com/singlecross/tilecert/prefs"

// SingleCrossing reports whether the triple (id, s1, s2) is single-crossing:
// for no candidate pair a < b does s1 rank b above a while s2 restores the
// identity's a-above-b order. Each pair may flip at most once along the
// sequence and never flip back.
func SingleCrossing(s1, s2 [NumCands]int) bool {
	var where1, where2 [NumCands + 1]int
	for i := 0; i < NumCands; i++ {
		where1[s1[i]] = i
		where2[s2[i]] = i
	}
	for a := 1; a <= NumCands; a++ {
		for b := a + 1; b <= NumCands; b++ {
			if where1[a] > where1[b] && where2[a] < where2[b] {
				return false
			}
		}
	}

	return true
}

// Triples returns all single-crossing triples over the candidates 1..4,
// scanning both permutations in lexicographic order (σ1 major). The count
// is exactly 151.
func Triples() []Triple {
	var out []Triple
	s1 := prefs.Identity(NumCands)
	for {
		s2 := prefs.Identity(NumCands)
		for {
			t := Triple{Sigma1: shift(s1), Sigma2: shift(s2)}
			if SingleCrossing(t.Sigma1, t.Sigma2) {
				out = append(out, t)
			}
			if !prefs.NextPerm(s2) {
				break
			}
		}
		if !prefs.NextPerm(s1) {
			break
		}
	}

	return out
}

// shift maps a 0-based permutation of [0, NumCands) onto the 1-based
// candidates of Experiment L.
func shift(p prefs.Pref) [NumCands]int {
	var s [NumCands]int
	for i, c := range p {
		s[i] = c + 1
	}

	return s
}
