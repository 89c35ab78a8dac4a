// internal/cli/examples.go
package cli

import (
	"fmt"
	"io"
)

// PrintExamples prints a small quickstart followed by a one-line tip to
// discover full help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s — quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # rewrite descriptions to gene:<id before first '.'>\n")
	_, _ = fmt.Fprintf(out, "  %s Lotus_japonicus.fa Lotus_japonicus_corrected.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # gzip in, stdout out\n")
	_, _ = fmt.Fprintf(out, "  %s -i cds.fa.gz -o - > cds_tagged.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # different tag and delimiter\n")
	_, _ = fmt.Fprintf(out, "  %s --prefix locus= --delimiter _ in.fa out.fa\n\n", name)
	_, _ = fmt.Fprintf(out, "  # settings from a file (in, out, prefix, delimiter, width, ...)\n")
	_, _ = fmt.Fprintf(out, "  GENETAG_WIDTH=80 %s --config genetag.yaml\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
