// Package api holds the stable JSON schema for analysis reports.
// Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
package api

// CompositionV1 is the base-composition section.
type CompositionV1 struct {
	Length    int            `json:"length"`
	Counts    map[string]int `json:"counts"`
	GCContent float64        `json:"gc_content"`
	ATContent float64        `json:"at_content"`
	GCSkew    float64        `json:"gc_skew"`
	ATSkew    float64        `json:"at_skew"`
}

// CodonCountV1 is one entry of a ranked codon list.
type CodonCountV1 struct {
	Codon string `json:"codon"`
	Count int    `json:"count"`
}

// CodonUsageV1 is the codon-usage section. Codon keys keep the input
// alphabet (U for RNA input).
type CodonUsageV1 struct {
	TotalCodons int            `json:"total_codons"`
	Codons      map[string]int `json:"codons"`
	AminoAcids  map[string]int `json:"amino_acids"`
	Most        []CodonCountV1 `json:"most_frequent"`
	Least       []CodonCountV1 `json:"least_frequent"`
	Bias        float64        `json:"bias"`
}

// ProteinPropsV1 is the physicochemical summary of a protein.
type ProteinPropsV1 struct {
	Length          int            `json:"length"`
	Composition     map[string]int `json:"composition"`
	MolecularWeight float64        `json:"molecular_weight"`
	IsoelectricPt   float64        `json:"isoelectric_point"`
	MeanHydropathy  float64        `json:"mean_hydropathy"`
}

// TranslationV1 is one reading-frame translation.
type TranslationV1 struct {
	Frame      int            `json:"frame"`
	Protein    string         `json:"protein"`
	Length     int            `json:"length"`
	Properties ProteinPropsV1 `json:"properties"`
}

// ORFV1 is one open reading frame. Frame is 1-based for display.
type ORFV1 struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Frame   int    `json:"frame"`
	Protein string `json:"protein"`
	Length  int    `json:"length"`
}

// MutationV1 is one reference/query divergence.
type MutationV1 struct {
	Position int    `json:"position"`
	Ref      string `json:"ref"`
	Alt      string `json:"alt"`
	Type     string `json:"type"`
	Effect   string `json:"effect"`
}

// MutationAnalysisV1 is the pairwise comparison section.
type MutationAnalysisV1 struct {
	Mutations []MutationV1 `json:"mutations"`
	Total     int          `json:"total"`
	Rate      float64      `json:"rate"`
}

// ReportV1 aggregates the sections a caller asked for; absent sections
// are omitted from the JSON encoding.
type ReportV1 struct {
	Kind        string              `json:"kind"`
	Length      int                 `json:"length"`
	Sequence    string              `json:"sequence,omitempty"`
	Composition *CompositionV1      `json:"composition,omitempty"`
	CodonUsage  *CodonUsageV1       `json:"codon_usage,omitempty"`
	Translation *TranslationV1      `json:"translation,omitempty"`
	ORFs        []ORFV1             `json:"orfs,omitempty"`
	Protein     *ProteinPropsV1     `json:"protein,omitempty"`
	Mutations   *MutationAnalysisV1 `json:"mutations,omitempty"`
}

// ServiceInfoV1 is the service-info payload of the HTTP surface.
type ServiceInfoV1 struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
