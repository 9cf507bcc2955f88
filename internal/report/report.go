// Package report converts core analyzer results to the stable wire
// schema (v1).
package report

import (
	"genevision/pkg/api"

	"seqcore/codonusage"
	"seqcore/composition"
	"seqcore/mutation"
	"seqcore/orf"
	"seqcore/protein"
	"seqcore/translate"
)

func FromComposition(r composition.Result) *api.CompositionV1 {
	return &api.CompositionV1{
		Length:    r.Length,
		Counts:    r.Counts,
		GCContent: r.GCContent,
		ATContent: r.ATContent,
		GCSkew:    r.GCSkew,
		ATSkew:    r.ATSkew,
	}
}

func FromCodonUsage(r codonusage.Result) *api.CodonUsageV1 {
	return &api.CodonUsageV1{
		TotalCodons: r.TotalCodons,
		Codons:      r.Codons,
		AminoAcids:  r.AminoAcids,
		Most:        toCodonCounts(r.Most),
		Least:       toCodonCounts(r.Least),
		Bias:        r.Bias,
	}
}

func toCodonCounts(list []codonusage.CodonCount) []api.CodonCountV1 {
	out := make([]api.CodonCountV1, 0, len(list))
	for _, cc := range list {
		out = append(out, api.CodonCountV1{Codon: cc.Codon, Count: cc.Count})
	}
	return out
}

func FromProperties(p protein.Properties) *api.ProteinPropsV1 {
	return &api.ProteinPropsV1{
		Length:          p.Length,
		Composition:     p.Composition,
		MolecularWeight: p.MolecularWeight,
		IsoelectricPt:   p.IsoelectricPt,
		MeanHydropathy:  p.MeanHydropathy,
	}
}

func FromTranslation(r translate.Result) *api.TranslationV1 {
	return &api.TranslationV1{
		Frame:      r.Frame,
		Protein:    r.Protein,
		Length:     r.Length,
		Properties: *FromProperties(r.Props),
	}
}

func FromORFs(list []orf.ORF) []api.ORFV1 {
	out := make([]api.ORFV1, 0, len(list))
	for _, o := range list {
		out = append(out, api.ORFV1{
			Start:   o.Start,
			End:     o.End,
			Frame:   o.Frame,
			Protein: o.Protein,
			Length:  o.Length,
		})
	}
	return out
}

func FromMutations(a mutation.Analysis) *api.MutationAnalysisV1 {
	out := &api.MutationAnalysisV1{
		Mutations: make([]api.MutationV1, 0, len(a.Mutations)),
		Total:     a.Total,
		Rate:      a.Rate,
	}
	for _, m := range a.Mutations {
		out.Mutations = append(out.Mutations, api.MutationV1{
			Position: m.Position,
			Ref:      m.Ref,
			Alt:      m.Alt,
			Type:     string(m.Type),
			Effect:   string(m.Effect),
		})
	}
	return out
}
