// Package codonusage tabulates codon and amino-acid frequencies over
// non-overlapping triplets of a nucleotide sequence.
package codonusage

import (
	"math"
	"sort"

	"seqcore/gencode"
	"seqcore/seq"
)

// CodonCount pairs a codon with its occurrence count, used for the
// ranked most-/least-frequent lists.
type CodonCount struct {
	Codon string
	Count int
}

// Result is the codon-usage summary. Codon keys are reported in the
// sequence's original alphabet (U preserved for RNA input) while the
// genetic-code lookup always runs on the DNA canonicalization.
type Result struct {
	TotalCodons int            // floor(len/3); trailing partial codon dropped
	Codons      map[string]int // codon → count, original alphabet
	CodonOrder  []string       // codons in first-encountered order
	AminoAcids  map[string]int // amino letter (incl. '*') → count
	Most        []CodonCount   // top 5 by count, discovery-order ties
	Least       []CodonCount   // bottom 5 by count, discovery-order ties
	Bias        float64        // mean |freq − 1/64| over used codons, 3 decimals
}

// Analyze walks the sequence in windows of three from offset zero. A
// trailing window shorter than three bases is silently dropped and does
// not count toward TotalCodons. Ranking ties are broken by discovery
// order (stable sort), never alphabetically.
func Analyze(s string, kind seq.Kind) Result {
	r := Result{
		Codons:     map[string]int{},
		AminoAcids: map[string]int{},
	}
	dna := seq.ToDNA(s)
	for i := 0; i+3 <= len(s); i += 3 {
		codon := s[i : i+3]
		if _, seen := r.Codons[codon]; !seen {
			r.CodonOrder = append(r.CodonOrder, codon)
		}
		r.Codons[codon]++
		aa := gencode.TranslateCodon(dna[i : i+3])
		r.AminoAcids[string(aa)]++
		r.TotalCodons++
	}
	if r.TotalCodons == 0 {
		return r
	}

	ranked := make([]CodonCount, len(r.CodonOrder))
	for i, c := range r.CodonOrder {
		ranked[i] = CodonCount{Codon: c, Count: r.Codons[c]}
	}
	desc := append([]CodonCount(nil), ranked...)
	sort.SliceStable(desc, func(i, j int) bool { return desc[i].Count > desc[j].Count })
	asc := append([]CodonCount(nil), ranked...)
	sort.SliceStable(asc, func(i, j int) bool { return asc[i].Count < asc[j].Count })
	r.Most = top(desc, 5)
	r.Least = top(asc, 5)

	// Mean absolute deviation of the used codons' frequencies from the
	// uniform 1/64 expectation.
	var dev float64
	for _, cc := range ranked {
		dev += math.Abs(float64(cc.Count)/float64(r.TotalCodons) - 1.0/64.0)
	}
	r.Bias = round(dev/float64(len(ranked)), 3)
	return r
}

func top(list []CodonCount, n int) []CodonCount {
	if len(list) > n {
		list = list[:n]
	}
	return append([]CodonCount(nil), list...)
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
