package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo"

	"genevision/internal/report"
	"genevision/internal/version"
	"genevision/pkg/api"

	"seqcore/codonusage"
	"seqcore/composition"
	"seqcore/mutation"
	"seqcore/orf"
	"seqcore/protein"
	"seqcore/seq"
	"seqcore/translate"
)

// AnalyzeRequest is the body of POST /analyze. An empty Analyses list
// runs every analysis applicable to the sequence kind.
type AnalyzeRequest struct {
	Sequence string   `json:"sequence"`
	Kind     string   `json:"kind"`
	Analyses []string `json:"analyses"`
	Frame    int      `json:"frame"`
	ShowSeq  bool     `json:"show_seq"`
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	Sequence string `json:"sequence"`
	Kind     string `json:"kind"`
}

// ValidateResponse reports the normalization/validation outcome.
type ValidateResponse struct {
	Valid      bool   `json:"valid"`
	Kind       string `json:"kind"`
	Length     int    `json:"length"`
	Normalized string `json:"normalized,omitempty"`
}

// MutationsRequest is the body of POST /mutations.
type MutationsRequest struct {
	Reference string `json:"reference"`
	Query     string `json:"query"`
	Kind      string `json:"kind"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func badRequest(c echo.Context, format string, a ...any) error {
	return c.JSON(http.StatusBadRequest, errorResponse{Error: fmt.Sprintf(format, a...)})
}

// GetServiceInfo reports the service name and version.
func (s *Server) GetServiceInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, api.ServiceInfoV1{Name: "genevision", Version: version.Version})
}

// PostValidate normalizes the submitted text and reports whether the
// result fits the declared alphabet. It never rejects with an error
// status for invalid sequences; invalidity is the payload.
func (s *Server) PostValidate(c echo.Context) error {
	fmt.Printf("[%s] - PostValidate hit!\n", time.Now())

	var req ValidateRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	kind, ok := seq.ParseKind(req.Kind)
	if !ok {
		return badRequest(c, "unknown sequence kind %q", req.Kind)
	}
	if s.Config.MaxSequenceLength > 0 && len(req.Sequence) > s.Config.MaxSequenceLength {
		return badRequest(c, "sequence exceeds the %d-character limit", s.Config.MaxSequenceLength)
	}
	normalized := seq.Normalize(req.Sequence, kind)
	return c.JSON(http.StatusOK, ValidateResponse{
		Valid:      seq.Validate(normalized, kind),
		Kind:       string(kind),
		Length:     len(normalized),
		Normalized: normalized,
	})
}

// PostAnalyze runs the requested analyses over one sequence and
// returns a ReportV1. Invalid sequences are rejected with 400 before
// any analyzer runs.
func (s *Server) PostAnalyze(c echo.Context) error {
	fmt.Printf("[%s] - PostAnalyze hit!\n", time.Now())

	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	kind, ok := seq.ParseKind(req.Kind)
	if !ok {
		return badRequest(c, "unknown sequence kind %q", req.Kind)
	}
	if req.Frame < 0 || req.Frame > 2 {
		return badRequest(c, "frame must be 0, 1 or 2")
	}
	if s.Config.MaxSequenceLength > 0 && len(req.Sequence) > s.Config.MaxSequenceLength {
		return badRequest(c, "sequence exceeds the %d-character limit", s.Config.MaxSequenceLength)
	}

	normalized := seq.Normalize(req.Sequence, kind)
	if !seq.Validate(normalized, kind) {
		return badRequest(c, "sequence is not valid %s after normalization", kind)
	}

	wants := func(name string) bool {
		if len(req.Analyses) == 0 {
			return true
		}
		for _, a := range req.Analyses {
			if a == name || a == "all" {
				return true
			}
		}
		return false
	}

	rep := api.ReportV1{Kind: string(kind), Length: len(normalized)}
	if req.ShowSeq {
		rep.Sequence = normalized
	}
	if kind == seq.Protein {
		if wants("protein") {
			rep.Protein = report.FromProperties(protein.Calculate(normalized))
		}
		return c.JSON(http.StatusOK, rep)
	}
	if wants("composition") {
		rep.Composition = report.FromComposition(composition.Analyze(normalized, kind))
	}
	if wants("codons") {
		rep.CodonUsage = report.FromCodonUsage(codonusage.Analyze(normalized, kind))
	}
	if wants("translate") {
		rep.Translation = report.FromTranslation(translate.Translate(normalized, req.Frame, kind))
	}
	if wants("orfs") {
		rep.ORFs = report.FromORFs(orf.Find(normalized, kind))
	}
	return c.JSON(http.StatusOK, rep)
}

// PostMutations compares a reference and a query positionally.
func (s *Server) PostMutations(c echo.Context) error {
	fmt.Printf("[%s] - PostMutations hit!\n", time.Now())

	var req MutationsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "malformed request body")
	}
	kind, ok := seq.ParseKind(req.Kind)
	if !ok {
		return badRequest(c, "unknown sequence kind %q", req.Kind)
	}
	if kind == seq.Protein {
		return badRequest(c, "mutation comparison takes nucleotide sequences")
	}

	ref := seq.Normalize(req.Reference, kind)
	query := seq.Normalize(req.Query, kind)
	if !seq.Validate(ref, kind) || !seq.Validate(query, kind) {
		return badRequest(c, "reference or query is not valid %s after normalization", kind)
	}
	return c.JSON(http.StatusOK, report.FromMutations(mutation.Compare(ref, query)))
}
