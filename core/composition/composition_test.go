package composition

import (
	"testing"

	"seqcore/seq"
)

func TestAnalyzeDNA(t *testing.T) {
	r := Analyze("ATGCGTAA", seq.DNA)
	want := map[string]int{"A": 3, "T": 2, "G": 2, "C": 1}
	for k, v := range want {
		if r.Counts[k] != v {
			t.Errorf("Counts[%s] = %d, want %d", k, r.Counts[k], v)
		}
	}
	if r.GCContent != 37.5 {
		t.Errorf("GCContent = %v, want 37.5", r.GCContent)
	}
	if r.ATContent != 62.5 {
		t.Errorf("ATContent = %v, want 62.5", r.ATContent)
	}
	if r.GCSkew != 0.333 { // (2−1)/3
		t.Errorf("GCSkew = %v, want 0.333", r.GCSkew)
	}
	if r.ATSkew != 0.2 { // (3−2)/5
		t.Errorf("ATSkew = %v, want 0.2", r.ATSkew)
	}
}

func TestCountsSumToLength(t *testing.T) {
	for _, s := range []string{"", "A", "ATGCGTAA", "GGGGCCCC", "AUGCAU"} {
		r := Analyze(s, seq.DNA)
		sum := 0
		for _, v := range r.Counts {
			sum += v
		}
		if sum != r.Length || r.Length != len(s) {
			t.Errorf("Analyze(%q): counts sum %d, length %d, want %d", s, sum, r.Length, len(s))
		}
	}
}

func TestAnalyzeAutoDetectsRNA(t *testing.T) {
	// A mislabelled caller passing RNA as DNA still gets a U key.
	r := Analyze("AUGU", seq.DNA)
	if r.Counts["U"] != 2 {
		t.Errorf("Counts[U] = %d, want 2 (counts: %v)", r.Counts["U"], r.Counts)
	}
	if _, ok := r.Counts["T"]; ok {
		t.Error("unexpected T key for U-containing sequence")
	}
}

func TestAnalyzeDegenerateInputs(t *testing.T) {
	empty := Analyze("", seq.DNA)
	if empty.Length != 0 || empty.GCContent != 0 || empty.GCSkew != 0 {
		t.Errorf("empty sequence not zeroed: %+v", empty)
	}
	// Zero denominators resolve to 0, never NaN.
	allA := Analyze("AAAA", seq.DNA)
	if allA.GCSkew != 0 {
		t.Errorf("GCSkew on all-A = %v, want 0", allA.GCSkew)
	}
	if allA.ATContent != 100 || allA.GCContent != 0 {
		t.Errorf("all-A content = %v/%v", allA.ATContent, allA.GCContent)
	}
	allG := Analyze("GGG", seq.DNA)
	if allG.ATSkew != 0 {
		t.Errorf("ATSkew on all-G = %v, want 0", allG.ATSkew)
	}
}
