package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"genevision/pkg/api"
)

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := Run(args, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestRunCompositionText(t *testing.T) {
	out, _, code := run(t, "--seq", "ATGCGTAA", "--analysis", "composition")
	if code != 0 {
		t.Fatalf("exit %d, output %q", code, out)
	}
	if !strings.Contains(out, "gc=37.50%") || !strings.Contains(out, "at=62.50%") {
		t.Errorf("composition line missing: %q", out)
	}
}

func TestRunJSONReport(t *testing.T) {
	out, _, code := run(t, "--seq", "ATGAAATAG", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if rep.Kind != "dna" || rep.Length != 9 {
		t.Errorf("header = %s/%d", rep.Kind, rep.Length)
	}
	if rep.Translation == nil || rep.Translation.Protein != "MK*" {
		t.Errorf("translation = %+v", rep.Translation)
	}
	if rep.CodonUsage == nil || rep.CodonUsage.TotalCodons != 3 {
		t.Errorf("codon usage = %+v", rep.CodonUsage)
	}
	if rep.Protein != nil {
		t.Error("standalone protein section set for nucleotide input")
	}
	if rep.Mutations != nil {
		t.Error("mutations ran without a comparison sequence")
	}
}

func TestRunProteinInput(t *testing.T) {
	out, _, code := run(t, "--seq", "MKHDE", "--type", "protein", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.Protein == nil || rep.Protein.Length != 5 {
		t.Fatalf("protein section = %+v", rep.Protein)
	}
	if rep.Protein.IsoelectricPt != 7.0 { // 2 basic (K,H) vs 2 acidic (D,E)
		t.Errorf("pI = %v, want 7.0", rep.Protein.IsoelectricPt)
	}
	if rep.Composition != nil || rep.Translation != nil {
		t.Error("nucleotide sections present for protein input")
	}
}

func TestRunMutations(t *testing.T) {
	out, _, code := run(t,
		"--seq", "ATGC", "--compare-seq", "ATGG",
		"--analysis", "mutations", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.Mutations == nil || rep.Mutations.Total != 1 {
		t.Fatalf("mutations = %+v", rep.Mutations)
	}
	m := rep.Mutations.Mutations[0]
	if m.Position != 3 || m.Ref != "C" || m.Alt != "G" || m.Type != "substitution" {
		t.Errorf("mutation = %+v", m)
	}
}

func TestRunNormalizesFastaInput(t *testing.T) {
	out, _, code := run(t,
		"--seq", ">header line\natg cgt aa", "--analysis", "composition", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.Length != 8 {
		t.Errorf("Length = %d, want 8", rep.Length)
	}
}

func TestRunRejectsInvalidSequence(t *testing.T) {
	_, errOut, code := run(t, "--seq", "ATGN")
	if code != 2 {
		t.Fatalf("exit %d, want 2", code)
	}
	if !strings.Contains(errOut, "not valid dna") {
		t.Errorf("stderr = %q", errOut)
	}
}

func TestRunUsageErrors(t *testing.T) {
	if _, errOut, code := run(t, "--frame", "7", "--seq", "ATGC"); code != 2 || errOut == "" {
		t.Errorf("bad frame: exit %d, stderr %q", code, errOut)
	}
	if out, _, code := run(t); code != 0 || !strings.Contains(out, "Usage") {
		t.Errorf("no-arg run: exit %d, out %q", code, out)
	}
}

func TestRunVersion(t *testing.T) {
	out, _, code := run(t, "--version")
	if code != 0 || !strings.Contains(out, "genevision version") {
		t.Errorf("version: exit %d, out %q", code, out)
	}
}

func TestRunRevComp(t *testing.T) {
	out, _, code := run(t, "--seq", "ATGC", "--revcomp", "--show-seq", "--output", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var rep api.ReportV1
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if rep.Sequence != "GCAT" {
		t.Errorf("Sequence = %q, want GCAT", rep.Sequence)
	}
}
