// Package seq holds the sequence kinds, alphabets, and the permissive
// normalizer / strict validator every analyzer relies on.
package seq

import (
	"strings"
	"unicode"
)

// Kind declares which alphabet a sequence is drawn from.
type Kind string

const (
	DNA     Kind = "dna"
	RNA     Kind = "rna"
	Protein Kind = "protein"
)

// ParseKind maps a user-supplied kind string to a Kind.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case DNA:
		return DNA, true
	case RNA:
		return RNA, true
	case Protein:
		return Protein, true
	}
	return "", false
}

var (
	dnaAlphabet     [256]bool
	rnaAlphabet     [256]bool
	proteinAlphabet [256]bool
)

func init() {
	for _, c := range []byte("ATGC") {
		dnaAlphabet[c] = true
	}
	for _, c := range []byte("AUGC") {
		rnaAlphabet[c] = true
	}
	for _, c := range []byte("ACDEFGHIKLMNPQRSTVWY*") {
		proteinAlphabet[c] = true
	}
}

// Sequence is a normalized sequence plus its declared kind. Analyzers
// consume it read-only; build one with New.
type Sequence struct {
	Kind Kind
	Seq  string
}

// New normalizes raw input and wraps it with its declared kind.
func New(raw string, kind Kind) Sequence {
	return Sequence{Kind: kind, Seq: Normalize(raw, kind)}
}

// Valid reports whether every symbol belongs to the declared alphabet.
func (s Sequence) Valid() bool { return Validate(s.Seq, s.Kind) }

// Normalize recovers a usable sequence from loosely formatted paste or
// upload text: FASTA header lines (first non-space char '>') are dropped,
// non-letter characters are removed, letters are uppercased, and U/T are
// canonicalized to the declared kind (T→U for RNA, U→T for DNA). It never
// rejects; callers that need rejection run Validate on the result.
func Normalize(raw string, kind Kind) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), ">") {
			continue
		}
		for _, r := range line {
			if !unicode.IsLetter(r) {
				continue
			}
			c := unicode.ToUpper(r)
			switch kind {
			case RNA:
				if c == 'T' {
					c = 'U'
				}
			case DNA:
				if c == 'U' {
					c = 'T'
				}
			}
			b.WriteRune(c)
		}
	}
	return b.String()
}

// Validate reports whether every character of an already-normalized
// sequence belongs to the alphabet of kind. The empty sequence is valid.
func Validate(s string, kind Kind) bool {
	var table *[256]bool
	switch kind {
	case DNA:
		table = &dnaAlphabet
	case RNA:
		table = &rnaAlphabet
	case Protein:
		table = &proteinAlphabet
	default:
		return false
	}
	for i := 0; i < len(s); i++ {
		if !table[s[i]] {
			return false
		}
	}
	return true
}

// ToDNA canonicalizes U→T so nucleotide analyzers can share one
// DNA-keyed genetic code table.
func ToDNA(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'U' {
			return 'T'
		}
		return r
	}, s)
}

// ToRNA is the inverse canonicalization, T→U.
func ToRNA(s string) string {
	return strings.Map(func(r rune) rune {
		if r == 'T' {
			return 'U'
		}
		return r
	}, s)
}

var complement [256]byte

func init() {
	complement['A'] = 'T'
	complement['T'] = 'A'
	complement['U'] = 'A'
	complement['G'] = 'C'
	complement['C'] = 'G'
}

// RevComp returns the reverse complement of a DNA/RNA sequence.
// Bases without a complement pass through unchanged.
func RevComp(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		b := s[n-1-i]
		if c := complement[b]; c != 0 {
			b = c
		}
		out[i] = b
	}
	return string(out)
}
