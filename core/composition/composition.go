// Package composition counts nucleotide occurrences and derives GC/AT
// content and skew.
package composition

import (
	"math"
	"strings"

	"seqcore/seq"
)

// Result is the base-composition summary of a nucleotide sequence.
// Counts always sum to Length for validated input.
type Result struct {
	Length    int
	Counts    map[string]int // keys: A, G, C, and T or U
	GCContent float64        // percent, 2 decimals
	ATContent float64        // percent, 2 decimals
	GCSkew    float64        // (G−C)/(G+C), 3 decimals, 0 when G+C == 0
	ATSkew    float64        // (A−T)/(A+T), 3 decimals, 0 when A+T == 0
}

// Analyze tallies A/G/C/T(U) and the derived percentages and skews.
// If the sequence contains U it is treated as RNA regardless of the
// declared kind, so mislabelled callers still get sensible keys.
// The empty sequence yields zeroed counts and 0-valued ratios.
func Analyze(s string, kind seq.Kind) Result {
	tu := byte('T')
	if kind == seq.RNA || strings.ContainsRune(s, 'U') {
		tu = 'U'
	}

	var a, t, g, c int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'A':
			a++
		case 'T', 'U':
			t++
		case 'G':
			g++
		case 'C':
			c++
		}
	}

	r := Result{
		Length: len(s),
		Counts: map[string]int{
			"A": a, string(tu): t, "G": g, "C": c,
		},
	}
	if r.Length > 0 {
		r.GCContent = round(float64(g+c)/float64(r.Length)*100, 2)
		r.ATContent = round(float64(a+t)/float64(r.Length)*100, 2)
	}
	if g+c > 0 {
		r.GCSkew = round(float64(g-c)/float64(g+c), 3)
	}
	if a+t > 0 {
		r.ATSkew = round(float64(a-t)/float64(a+t), 3)
	}
	return r
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
