package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the brace checker over HTTP",
	Long: `Start the HTTP API. The joint lives in memory and each field can be
updated independently; the last result is kept in the result database
when one is configured.

Examples:
  gobrace serve --addr :8080 --db brace.db`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, overrides GOBRACE_HTTP_ADDR")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx, standardJoint())
	if err != nil {
		return err
	}
	defer a.close()

	if serveAddr != "" {
		a.cfg.HTTP.Addr = serveAddr
	}
	h := server.NewHandler(a.designer, a.log)
	return server.New(a.cfg.HTTP, h).Run(ctx)
}
