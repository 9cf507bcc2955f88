// Package protein computes amino-acid composition and basic
// physicochemical aggregates (molecular weight, isoelectric point,
// mean hydropathy) over a one-letter protein string.
package protein

import "math"

// residueWeight holds average residue masses in Da.
var residueWeight = map[byte]float64{
	'A': 71.08, 'R': 156.19, 'N': 114.10, 'D': 115.09, 'C': 103.14,
	'E': 129.12, 'Q': 128.13, 'G': 57.05, 'H': 137.14, 'I': 113.16,
	'L': 113.16, 'K': 128.17, 'M': 131.19, 'F': 147.18, 'P': 97.12,
	'S': 87.08, 'T': 101.10, 'W': 186.21, 'Y': 163.18, 'V': 99.13,
}

// hydropathy is the Kyte–Doolittle scale.
var hydropathy = map[byte]float64{
	'A': 1.8, 'R': -4.5, 'N': -3.5, 'D': -3.5, 'C': 2.5,
	'E': -3.5, 'Q': -3.5, 'G': -0.4, 'H': -3.2, 'I': 4.5,
	'L': 3.8, 'K': -3.9, 'M': 1.9, 'F': 2.8, 'P': -1.6,
	'S': -0.8, 'T': -0.7, 'W': -0.9, 'Y': -1.3, 'V': 4.2,
}

// IsBasic reports whether a residue carries a basic side chain (R, K, H).
func IsBasic(aa byte) bool { return aa == 'R' || aa == 'K' || aa == 'H' }

// IsAcidic reports whether a residue carries an acidic side chain (D, E).
func IsAcidic(aa byte) bool { return aa == 'D' || aa == 'E' }

// Properties is the physicochemical summary of a protein.
type Properties struct {
	Length          int
	Composition     map[string]int
	MolecularWeight float64 // Da, sum of residue weights, 2 decimals
	IsoelectricPt   float64 // simplified estimate, 2 decimals
	MeanHydropathy  float64 // Kyte–Doolittle average, 3 decimals
}

// Calculate summarizes a one-letter protein string. Residues without a
// weight/hydropathy entry (placeholder X, stop *) are counted in the
// composition but contribute nothing to the weight sum and are excluded
// from the hydropathy average's denominator.
//
// The isoelectric point is the deliberate simplification
// 7 + 0.5×(basic − acidic); it is not a pKa titration and must stay that
// way for output parity with downstream consumers.
func Calculate(p string) Properties {
	props := Properties{
		Length:      len(p),
		Composition: map[string]int{},
	}
	var (
		weight     float64
		hydroSum   float64
		hydroCount int
		basic      int
		acidic     int
	)
	for i := 0; i < len(p); i++ {
		aa := p[i]
		props.Composition[string(aa)]++
		if w, ok := residueWeight[aa]; ok {
			weight += w
		}
		if h, ok := hydropathy[aa]; ok {
			hydroSum += h
			hydroCount++
		}
		if IsBasic(aa) {
			basic++
		}
		if IsAcidic(aa) {
			acidic++
		}
	}
	props.MolecularWeight = round(weight, 2)
	props.IsoelectricPt = round(7+0.5*float64(basic-acidic), 2)
	if hydroCount > 0 {
		props.MeanHydropathy = round(hydroSum/float64(hydroCount), 3)
	}
	return props
}

func round(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}
