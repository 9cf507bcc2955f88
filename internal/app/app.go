// internal/app/app.go
package app

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"genevision/internal/cli"
	"genevision/internal/output"
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

// Run parses argv, executes the requested analyses and writes the
// report to stdout. Exit codes: 0 ok, 2 usage or input error, 3 write
// error.
func Run(argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("genevision")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(outw)
		fs.Usage()
		return flushCode(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "genevision version %s\n", version.Version)
		return flushCode(outw, stderr, 0)
	}

	kind, _ := seq.ParseKind(opts.Kind)

	raw, err := readSequence(opts.Seq, opts.SeqFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	normalized := seq.Normalize(raw, kind)
	if opts.RevComp {
		normalized = seq.RevComp(normalized)
	}
	// The engine assumes validated input; rejection is this layer's job.
	if !seq.Validate(normalized, kind) {
		_, _ = fmt.Fprintf(stderr, "error: sequence is not valid %s after normalization\n", kind)
		return 2
	}

	rep := api.ReportV1{Kind: string(kind), Length: len(normalized)}
	if opts.ShowSeq {
		rep.Sequence = normalized
	}

	nucleotide := kind != seq.Protein
	if nucleotide {
		if opts.Wants(cli.AnalysisComposition) {
			rep.Composition = report.FromComposition(composition.Analyze(normalized, kind))
		}
		if opts.Wants(cli.AnalysisCodons) {
			rep.CodonUsage = report.FromCodonUsage(codonusage.Analyze(normalized, kind))
		}
		if opts.Wants(cli.AnalysisTranslate) {
			rep.Translation = report.FromTranslation(translate.Translate(normalized, opts.Frame, kind))
		}
		if opts.Wants(cli.AnalysisORFs) {
			rep.ORFs = report.FromORFs(orf.Find(normalized, kind))
		}
	} else if opts.Wants(cli.AnalysisProtein) {
		rep.Protein = report.FromProperties(protein.Calculate(normalized))
	}

	if opts.Wants(cli.AnalysisMutations) {
		queryRaw, qErr := readSequence(opts.CompareSeq, opts.CompareFile)
		if qErr != nil {
			_, _ = fmt.Fprintln(stderr, qErr)
			return 2
		}
		query := seq.Normalize(queryRaw, kind)
		if !seq.Validate(query, kind) {
			_, _ = fmt.Fprintf(stderr, "error: comparison sequence is not valid %s after normalization\n", kind)
			return 2
		}
		rep.Mutations = report.FromMutations(mutation.Compare(normalized, query))
	}

	switch opts.Output {
	case "json":
		err = output.WriteJSON(outw, rep)
	default:
		err = output.WriteText(outw, rep)
	}
	if err != nil {
		if output.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr, 0)
}

// readSequence resolves inline text, a file path, or '-' for stdin.
func readSequence(inline, path string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func flushCode(outw *bufio.Writer, stderr io.Writer, ok int) int {
	if err := outw.Flush(); output.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return ok
}
