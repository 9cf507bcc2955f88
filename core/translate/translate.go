// Package translate maps nucleotide sequences through the genetic code
// into proteins and attaches protein-level aggregates.
package translate

import (
	"strings"

	"seqcore/gencode"
	"seqcore/protein"
	"seqcore/seq"
)

// Result is a reading-frame translation plus the physicochemical
// summary of the resulting protein. Stops are kept in Protein as '*';
// the engine never truncates at a stop codon.
type Result struct {
	Frame   int    // 0-based nucleotide offset the scan started at
	Protein string // one-letter amino acids, '*' stops, 'X' unknowns
	Length  int
	Props   protein.Properties
}

// Translate scans non-overlapping codons from the 0-based offset frame
// (0, 1, or 2) and maps each through the genetic code. RNA input is
// canonicalized to DNA before lookup. Codons with no table entry become
// the placeholder 'X', which the property aggregates ignore. A 0-length
// input is valid and yields an empty protein.
func Translate(s string, frame int, kind seq.Kind) Result {
	dna := seq.ToDNA(s)

	var b strings.Builder
	for _, codon := range gencode.Codons(dna, frame) {
		b.WriteByte(gencode.TranslateCodon(codon))
	}
	p := b.String()
	return Result{
		Frame:   frame,
		Protein: p,
		Length:  len(p),
		Props:   protein.Calculate(p),
	}
}
