package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/report"
)

var (
	reportFormat string
	reportOutput string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the last check result as a report",
	Long: `Write the last recorded check result, restored from the result
database (--db or GOBRACE_RESULT_DB), as text, PDF or Excel.

Examples:
  gobrace check --db brace.db -s CT-150x300x10x15 -r 2 -n 400
  gobrace report --db brace.db -o V1.pdf`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Report format: text, pdf or xlsx (default from --output extension)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file (default stdout)")
}

func runReport(cmd *cobra.Command, args []string) error {
	format := reportFormat
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(reportOutput)), ".")
	}
	var write func(io.Writer, *report.Report) error
	switch format {
	case "", "text", "txt":
		write = report.WriteText
	case "pdf":
		write = report.WritePDF
	case "xlsx":
		write = report.WriteXLSX
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}

	a, err := newApp(cmd.Context(), standardJoint())
	if err != nil {
		return err
	}
	defer a.close()

	if a.store == nil {
		a.log.Warn("no result database configured, nothing to report")
	}
	rep, err := report.Build(a.designer.LastResult())
	if err != nil {
		return err
	}

	if reportOutput == "" {
		return write(os.Stdout, rep)
	}
	f, err := os.Create(reportOutput)
	if err != nil {
		return err
	}
	if err := write(f, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Report written to: %s\n", reportOutput)
	return nil
}
