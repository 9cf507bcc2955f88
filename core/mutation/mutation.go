// Package mutation performs strictly positional reference/query diffing
// with codon-context classification of substitutions.
//
// This is not an alignment: one upstream indel desynchronizes every
// later position and is reported as a run of substitutions. Callers
// wanting gap-aware comparison need a different tool.
package mutation

import (
	"math"

	"seqcore/gencode"
	"seqcore/seq"
)

// Type classifies a single divergence.
type Type string

const (
	Substitution Type = "substitution"
	Insertion    Type = "insertion"
	Deletion     Type = "deletion"
)

// Effect classifies the coding consequence of a divergence.
type Effect string

const (
	Synonymous Effect = "synonymous"
	Missense   Effect = "missense"
	Nonsense   Effect = "nonsense"
	Frameshift Effect = "frameshift"
)

// Mutation is one position where reference and query diverge. The
// missing side of an insertion/deletion is reported as "-".
type Mutation struct {
	Position int // 0-based
	Ref      string
	Alt      string
	Type     Type
	Effect   Effect
}

// Analysis is the ordered list of divergences plus summary figures.
type Analysis struct {
	Mutations []Mutation
	Total     int
	Rate      float64 // percent of compared positions, 2 decimals
}

// Compare walks positions 0..max(len(ref),len(query))−1. Matching
// symbols record nothing. A mismatch where both sequences have a symbol
// is a Substitution whose effect comes from re-translating the 3-base
// codon window containing the position in both sequences: identical
// amino acids ⇒ Synonymous, mutant stop ⇒ Nonsense, otherwise Missense;
// a window cut short by sequence end defaults to Missense. A position
// present in only one sequence is an Insertion (query longer) or
// Deletion (reference longer), always Frameshift.
//
// Comparing a sequence against itself yields zero mutations.
func Compare(ref, query string) Analysis {
	// Symbols are reported as given (U preserved for RNA input); only
	// the codon-window translation runs on the DNA canonicalization.
	refDNA := seq.ToDNA(ref)
	queryDNA := seq.ToDNA(query)

	n := len(ref)
	if len(query) > n {
		n = len(query)
	}

	var a Analysis
	for i := 0; i < n; i++ {
		switch {
		case i >= len(ref):
			a.Mutations = append(a.Mutations, Mutation{
				Position: i, Ref: "-", Alt: string(query[i]),
				Type: Insertion, Effect: Frameshift,
			})
		case i >= len(query):
			a.Mutations = append(a.Mutations, Mutation{
				Position: i, Ref: string(ref[i]), Alt: "-",
				Type: Deletion, Effect: Frameshift,
			})
		case refDNA[i] != queryDNA[i]:
			a.Mutations = append(a.Mutations, Mutation{
				Position: i, Ref: string(ref[i]), Alt: string(query[i]),
				Type: Substitution,
				Effect: substitutionEffect(refDNA, queryDNA, i),
			})
		}
	}
	a.Total = len(a.Mutations)
	if n > 0 {
		a.Rate = round(float64(a.Total)/float64(n)*100, 2)
	}
	return a
}

// substitutionEffect re-translates the codon window holding position i
// in both sequences and compares the amino acids.
func substitutionEffect(ref, query string, i int) Effect {
	codonStart := (i / 3) * 3
	if codonStart+3 > len(ref) || codonStart+3 > len(query) {
		return Missense
	}
	refAA := gencode.TranslateCodon(ref[codonStart : codonStart+3])
	altAA := gencode.TranslateCodon(query[codonStart : codonStart+3])
	switch {
	case refAA == altAA:
		return Synonymous
	case altAA == gencode.Stop:
		return Nonsense
	default:
		return Missense
	}
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
