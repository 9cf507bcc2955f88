package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"genevision/pkg/api"
)

func sampleReport() api.ReportV1 {
	return api.ReportV1{
		Kind:   "dna",
		Length: 8,
		Composition: &api.CompositionV1{
			Length:    8,
			Counts:    map[string]int{"A": 3, "T": 2, "G": 2, "C": 1},
			GCContent: 37.5,
			ATContent: 62.5,
			GCSkew:    0.333,
			ATSkew:    0.2,
		},
		ORFs: []api.ORFV1{
			{Start: 0, End: 17, Frame: 1, Protein: "MKPGF", Length: 5},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"sequence\ttype=dna\tlength=8",
		"composition\tA=3 T=2 G=2 C=1\tgc=37.50%\tat=62.50%\tgc_skew=0.333\tat_skew=0.200",
		"orf\tframe=1\tstart=0\tend=17\tlength=5\tprotein=MKPGF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteTextOmitsAbsentSections(t *testing.T) {
	var buf bytes.Buffer
	rep := api.ReportV1{Kind: "protein", Length: 3}
	if err := WriteText(&buf, rep); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, "composition") || strings.Contains(out, "mutation") {
		t.Errorf("absent sections rendered:\n%s", out)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleReport()); err != nil {
		t.Fatal(err)
	}
	var rep api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.Composition == nil || rep.Composition.GCContent != 37.5 {
		t.Errorf("composition lost: %+v", rep.Composition)
	}
	// Absent sections must be omitted, not nulled-in as empty objects.
	if strings.Contains(buf.String(), "codon_usage") {
		t.Errorf("omitted section serialized:\n%s", buf.String())
	}
}
