// Package orf enumerates open reading frames across the three forward
// reading frames of a nucleotide sequence.
package orf

import (
	"sort"
	"strings"

	"seqcore/gencode"
	"seqcore/seq"
)

// MinProteinLen is the minimum translated length (residues, stop
// excluded) for a span to qualify as an ORF.
const MinProteinLen = 5

// ORF is one start→stop coding-region candidate.
type ORF struct {
	Start   int    // 0-based index of the start codon's first base
	End     int    // 0-based index of the stop codon's last base
	Frame   int    // 1-based frame number, for display
	Protein string // translated residues, stop excluded
	Length  int    // len(Protein)
}

// Find scans each forward frame codon-by-codon: an ATG opens a span,
// an in-frame stop closes it, and the span is emitted only when its
// translation is at least MinProteinLen residues. A span still open at
// sequence end is discarded, not reported open-ended. Results are
// sorted by protein length descending; ties keep discovery order
// (frame ascending, then position ascending). The same base may sit
// inside ORFs of several frames at once.
func Find(s string, kind seq.Kind) []ORF {
	dna := seq.ToDNA(s)

	var found []ORF
	for frame := 0; frame < 3; frame++ {
		open := false
		start := 0
		var prot strings.Builder
		for i := frame; i+3 <= len(dna); i += 3 {
			codon := dna[i : i+3]
			if !open {
				if gencode.IsStartCodon(codon) {
					open = true
					start = i
					prot.Reset()
					prot.WriteByte(gencode.TranslateCodon(codon))
				}
				continue
			}
			if gencode.IsStopCodon(codon) {
				if prot.Len() >= MinProteinLen {
					found = append(found, ORF{
						Start:   start,
						End:     i + 2,
						Frame:   frame + 1,
						Protein: prot.String(),
						Length:  prot.Len(),
					})
				}
				open = false
				continue
			}
			prot.WriteByte(gencode.TranslateCodon(codon))
		}
		// an ORF with no in-frame stop before sequence end is dropped
	}
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].Length > found[j].Length
	})
	return found
}
