package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gobrace/internal/brace"
	"github.com/alexiusacademia/gobrace/internal/catalog"
	"github.com/alexiusacademia/gobrace/internal/config"
	"github.com/alexiusacademia/gobrace/internal/logger"
	"github.com/alexiusacademia/gobrace/internal/store/sqlite"
	"github.com/alexiusacademia/gobrace/internal/version"
)

var (
	envFile     string
	catalogFile string
	resultDB    string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "gobrace",
	Short: "Steel Brace Connection Checker",
	Long: `gobrace - Go Steel Brace Connection Checker

A CLI tool for checking bolted tension brace connections
following the AIJ high-strength bolted joint recommendations.

This tool helps structural engineers perform:
  - Base material net-section yield check
  - High-strength bolt friction (slip) check
  - Gusset plate effective-width yield check
  - Joint geometry previews and reports (text, PDF, Excel)

Members may be split tees (CT), angles or channels.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gobrace v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Steel Brace Connection Checker                       ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Section, material and bolt catalogs")
		fmt.Println("    • Base, bolt and gusset yield checks")
		fmt.Println("    • Joint geometry in m, cm or mm")
		fmt.Println("    • HTTP API with PDF and Excel reports")
		fmt.Println()
		fmt.Println("  Use 'gobrace --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Optional .env file with GOBRACE_* settings")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "Extra catalog entries (YAML), overrides GOBRACE_CATALOG_FILE")
	rootCmd.PersistentFlags().StringVar(&resultDB, "db", "", "SQLite file for the last result, overrides GOBRACE_RESULT_DB")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error), overrides GOBRACE_LOG_LEVEL")
}

// app holds everything a command needs.
type app struct {
	cfg      *config.Config
	log      *logger.Logger
	catalog  *catalog.Catalog
	designer *brace.Designer
	store    *sqlite.Store
}

// loadConfig reads the configuration and applies the persistent flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, err
	}
	if catalogFile != "" {
		cfg.Storage.CatalogFile = catalogFile
	}
	if resultDB != "" {
		cfg.Storage.ResultDB = resultDB
	}
	if logLevel != "" {
		cfg.Logger.Level = logLevel
	}
	return cfg, nil
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Storage.CatalogFile != "" {
		return catalog.LoadFile(cfg.Storage.CatalogFile)
	}
	return catalog.Default()
}

// newApp wires config, logger, catalog, store and designer. The caller
// must call close.
func newApp(ctx context.Context, def brace.Defaults) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	log, err := logger.New(cfg.Logger.Level, cfg.Logger.AsJSON)
	if err != nil {
		return nil, err
	}
	c, err := loadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	if def.GussetLgMm == 0 {
		def.GussetLgMm = cfg.Defaults.GussetLgMm
	}
	opts := []brace.Option{brace.WithLogger(log), brace.WithDefaults(def)}

	a := &app{cfg: cfg, log: log, catalog: c}
	if cfg.Storage.ResultDB != "" {
		a.store, err = sqlite.New(cfg.Storage.ResultDB)
		if err != nil {
			return nil, err
		}
		opts = append(opts, brace.WithStore(a.store))
	}

	a.designer, err = brace.New(c, opts...)
	if err != nil {
		a.close()
		return nil, err
	}
	if err := a.designer.Restore(ctx); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

// standardJoint is the built-in default joint with the configured gusset length.
func standardJoint() brace.Defaults {
	def := brace.DefaultJoint
	def.GussetLgMm = 0
	return def
}

func (a *app) close() {
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("close result store", "error", err)
		}
	}
	a.log.Sync()
}
