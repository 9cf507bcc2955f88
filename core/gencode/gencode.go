// Package gencode is the standard genetic code: the fixed 64-entry
// DNA-codon → amino-acid table and the codon predicates built on it.
// The table is read-only after init; concurrent reads are safe.
package gencode

// Stop is the translation stop marker.
const Stop = '*'

// Unknown is the placeholder for codons with no table entry.
const Unknown = 'X'

// codonTable maps DNA codons to one-letter amino acids ('*' = stop).
var codonTable = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',

	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',

	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',

	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// TranslateCodon maps a DNA codon to its amino acid. Codons shorter than
// three bases or absent from the table (ambiguity codes and the like)
// yield Unknown.
func TranslateCodon(codon string) byte {
	if len(codon) != 3 {
		return Unknown
	}
	if aa, ok := codonTable[codon]; ok {
		return aa
	}
	return Unknown
}

// IsStartCodon reports whether codon is ATG.
func IsStartCodon(codon string) bool { return codon == "ATG" }

// IsStopCodon reports whether codon translates to a stop.
func IsStopCodon(codon string) bool { return TranslateCodon(codon) == Stop }

// Codons partitions a DNA sequence into non-overlapping triplets starting
// at offset frame (0, 1, or 2). A trailing partial codon is dropped.
func Codons(dna string, frame int) []string {
	if frame < 0 || frame >= len(dna) {
		return nil
	}
	out := make([]string, 0, (len(dna)-frame)/3)
	for i := frame; i+3 <= len(dna); i += 3 {
		out = append(out, dna[i:i+3])
	}
	return out
}
