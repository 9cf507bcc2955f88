// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"genevision/internal/version"
)

// Analysis names accepted by --analysis.
const (
	AnalysisComposition = "composition"
	AnalysisCodons      = "codons"
	AnalysisTranslate   = "translate"
	AnalysisORFs        = "orfs"
	AnalysisProtein     = "protein"
	AnalysisMutations   = "mutations"
	AnalysisAll         = "all"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Sequence input
	Seq     string
	SeqFile string
	Kind    string

	// Analyses
	Analyses []string
	Frame    int

	// Mutation comparison input (query; the main sequence is the reference)
	CompareSeq  string
	CompareFile string

	// Output
	Output  string
	ShowSeq bool
	RevComp bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: DNA/RNA/protein sequence analysis

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool
	var analyses string

	// Sequence input
	fs.StringVar(&opt.Seq, "seq", "", "sequence given inline [*]")
	fs.StringVar(&opt.SeqFile, "input", "", "sequence file, raw or FASTA ('-' = stdin) [*]")
	fs.StringVar(&opt.Kind, "type", "dna", "sequence type: dna | rna | protein [dna]")

	// Analyses
	fs.StringVar(&analyses, "analysis", AnalysisAll, "comma-separated analyses: composition,codons,translate,orfs,protein,mutations | all [all]")
	fs.IntVar(&opt.Frame, "frame", 0, "translation frame offset: 0, 1 or 2 [0]")

	// Mutation comparison
	fs.StringVar(&opt.CompareSeq, "compare-seq", "", "query sequence for mutation comparison, inline")
	fs.StringVar(&opt.CompareFile, "compare-file", "", "query sequence file for mutation comparison")

	// Output
	fs.StringVar(&opt.Output, "output", "text", "output format: text | json [text]")
	fs.BoolVar(&opt.ShowSeq, "show-seq", false, "include the normalized sequence in the report [false]")
	fs.BoolVar(&opt.RevComp, "revcomp", false, "analyze the reverse complement of the input [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.Seq == "" && opt.SeqFile == "" {
		return opt, errors.New("one of --seq or --input is required")
	}
	if opt.Seq != "" && opt.SeqFile != "" {
		return opt, errors.New("--seq and --input are mutually exclusive")
	}
	switch opt.Kind {
	case "dna", "rna", "protein":
	default:
		return opt, fmt.Errorf("invalid --type %q (dna | rna | protein)", opt.Kind)
	}
	if opt.Frame < 0 || opt.Frame > 2 {
		return opt, fmt.Errorf("invalid --frame %d (0, 1 or 2)", opt.Frame)
	}
	switch opt.Output {
	case "text", "json":
	default:
		return opt, fmt.Errorf("invalid --output %q (text | json)", opt.Output)
	}

	for _, a := range strings.Split(analyses, ",") {
		a = strings.TrimSpace(strings.ToLower(a))
		if a == "" {
			continue
		}
		switch a {
		case AnalysisComposition, AnalysisCodons, AnalysisTranslate,
			AnalysisORFs, AnalysisProtein, AnalysisMutations, AnalysisAll:
			opt.Analyses = append(opt.Analyses, a)
		default:
			return opt, fmt.Errorf("unknown analysis %q", a)
		}
	}
	if len(opt.Analyses) == 0 {
		opt.Analyses = []string{AnalysisAll}
	}
	if opt.Wants(AnalysisMutations) && opt.CompareSeq == "" && opt.CompareFile == "" {
		return opt, errors.New("mutation analysis needs --compare-seq or --compare-file")
	}
	if opt.CompareSeq != "" && opt.CompareFile != "" {
		return opt, errors.New("--compare-seq and --compare-file are mutually exclusive")
	}
	if opt.Kind == "protein" && opt.RevComp {
		return opt, errors.New("--revcomp only applies to nucleotide input")
	}
	return opt, nil
}

// Wants reports whether an analysis was requested, directly or via "all".
// "all" never implies mutations; those need an explicit request plus a
// query sequence.
func (o Options) Wants(name string) bool {
	for _, a := range o.Analyses {
		if a == name {
			return true
		}
		if a == AnalysisAll && name != AnalysisMutations {
			return true
		}
	}
	return false
}
