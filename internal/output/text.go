// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"sort"

	"genevision/pkg/api"
)

// WriteText prints a human-readable multi-section report.
func WriteText(w io.Writer, r api.ReportV1) error {
	if _, err := fmt.Fprintf(w, "sequence\ttype=%s\tlength=%d\n", r.Kind, r.Length); err != nil {
		return err
	}
	if r.Sequence != "" {
		if _, err := fmt.Fprintf(w, "seq\t%s\n", r.Sequence); err != nil {
			return err
		}
	}
	if r.Composition != nil {
		if err := writeComposition(w, r.Composition); err != nil {
			return err
		}
	}
	if r.CodonUsage != nil {
		if err := writeCodonUsage(w, r.CodonUsage); err != nil {
			return err
		}
	}
	if r.Translation != nil {
		c := r.Translation
		if _, err := fmt.Fprintf(w, "translation\tframe=%d\tprotein=%s\tlength=%d\n",
			c.Frame, c.Protein, c.Length); err != nil {
			return err
		}
		if err := writeProps(w, "translation.protein", &c.Properties); err != nil {
			return err
		}
	}
	for _, o := range r.ORFs {
		if _, err := fmt.Fprintf(w, "orf\tframe=%d\tstart=%d\tend=%d\tlength=%d\tprotein=%s\n",
			o.Frame, o.Start, o.End, o.Length, o.Protein); err != nil {
			return err
		}
	}
	if r.Protein != nil {
		if err := writeProps(w, "protein", r.Protein); err != nil {
			return err
		}
	}
	if r.Mutations != nil {
		m := r.Mutations
		if _, err := fmt.Fprintf(w, "mutations\ttotal=%d\trate=%.2f%%\n", m.Total, m.Rate); err != nil {
			return err
		}
		for _, mu := range m.Mutations {
			if _, err := fmt.Fprintf(w, "mutation\tpos=%d\t%s>%s\t%s\t%s\n",
				mu.Position, mu.Ref, mu.Alt, mu.Type, mu.Effect); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeComposition(w io.Writer, c *api.CompositionV1) error {
	_, err := fmt.Fprintf(w, "composition\t%s\tgc=%.2f%%\tat=%.2f%%\tgc_skew=%.3f\tat_skew=%.3f\n",
		countsInBaseOrder(c.Counts), c.GCContent, c.ATContent, c.GCSkew, c.ATSkew)
	return err
}

// countsInBaseOrder renders counts as A/T(U)/G/C in a fixed order so
// text output is reproducible.
func countsInBaseOrder(counts map[string]int) string {
	out := ""
	for _, k := range []string{"A", "T", "U", "G", "C"} {
		if v, ok := counts[k]; ok {
			if out != "" {
				out += " "
			}
			out += fmt.Sprintf("%s=%d", k, v)
		}
	}
	return out
}

func writeCodonUsage(w io.Writer, c *api.CodonUsageV1) error {
	if _, err := fmt.Fprintf(w, "codon_usage\ttotal=%d\tbias=%.3f\n", c.TotalCodons, c.Bias); err != nil {
		return err
	}
	for _, cc := range c.Most {
		if _, err := fmt.Fprintf(w, "codon_most\t%s\t%d\n", cc.Codon, cc.Count); err != nil {
			return err
		}
	}
	for _, cc := range c.Least {
		if _, err := fmt.Fprintf(w, "codon_least\t%s\t%d\n", cc.Codon, cc.Count); err != nil {
			return err
		}
	}
	return nil
}

func writeProps(w io.Writer, label string, p *api.ProteinPropsV1) error {
	keys := make([]string, 0, len(p.Composition))
	for k := range p.Composition {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	comp := ""
	for _, k := range keys {
		if comp != "" {
			comp += " "
		}
		comp += fmt.Sprintf("%s=%d", k, p.Composition[k])
	}
	_, err := fmt.Fprintf(w, "%s\tlength=%d\tmw=%.2f\tpi=%.2f\thydropathy=%.3f\t%s\n",
		label, p.Length, p.MolecularWeight, p.IsoelectricPt, p.MeanHydropathy, comp)
	return err
}
