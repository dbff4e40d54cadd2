package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/gobrace/internal/check"
)

const (
	banner = "═══════════════════════════════════════════════════════════════"
	rule   = "───────────────────────────────────────────────────────────────"
)

// WriteText prints the report as aligned plain-text tables.
func WriteText(out io.Writer, rep *Report) error {
	var b strings.Builder

	fmt.Fprintln(&b, banner)
	fmt.Fprintf(&b, "  %s  [%s]\n", strings.ToUpper(rep.Title), rep.Mark)
	fmt.Fprintln(&b, banner)
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Result ID:\t%s\n", rep.ID)
	if !rep.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  Date:\t%s\n", rep.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(w, "  Design force (Nd):\t%s kN\n", rep.Force.Text)
	w.Flush()

	for _, t := range rep.Tables {
		fmt.Fprintln(&b)
		fmt.Fprintf(&b, "  %s\n", strings.ToUpper(t.Title))
		fmt.Fprintln(&b, rule)

		w = tabwriter.NewWriter(&b, 0, 0, 2, ' ', tabwriter.AlignRight)
		headers := make([]string, len(t.Columns))
		for i, c := range t.Columns {
			headers[i] = c.Header()
		}
		fmt.Fprintf(w, "  %s\t\n", strings.Join(headers, "\t"))
		for _, row := range t.Rows {
			cells := make([]string, len(row))
			for i, c := range row {
				cells[i] = c.Text
			}
			fmt.Fprintf(w, "  %s\t\n", strings.Join(cells, "\t"))
		}
		w.Flush()
	}

	fmt.Fprintln(&b)
	fmt.Fprintln(&b, rule)
	mark := "✓"
	if rep.Judgment != check.OK {
		mark = "✗"
	}
	fmt.Fprintf(&b, "  Overall judgment: %s %s\n", rep.Judgment, mark)
	fmt.Fprintln(&b, rule)

	_, err := io.WriteString(out, b.String())
	return err
}
