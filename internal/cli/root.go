// Package cli provides the command-line interface for the instrument model.
package cli

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"instrument-model/internal/catalog"
	"instrument-model/internal/config"
	perrors "instrument-model/internal/errors"
	"instrument-model/internal/logging"
	"instrument-model/pkg/products"
)

// Version information
const (
	Version   = "0.1.0"
	BuildDate = "2026-10-19"
)

// App holds the application dependencies.
type App struct {
	Config    *config.Config
	ConfigDir string
	Logger    zerolog.Logger
	Strict    bool

	catalogOnce sync.Once
	catalog     *catalog.Catalog
	catalogErr  error
}

// NewRootCmd creates the root command for the CLI. When app.Config is nil
// the configuration is loaded from --config before any command runs.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "products",
		Short: "Bond and interest rate swap reference data",
		Long: `products builds, inspects and renders immutable bond and interest rate
swap records in their canonical single-line form.

Use 'products enums' to list the accepted enumeration values.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil {
				dir, _ := cmd.Flags().GetString("config")
				cfg, err := config.Load(dir)
				if err != nil {
					return err
				}
				app.Config = cfg
				app.ConfigDir = dir
				app.Logger = logging.NewLoggerWithConfig(cfg.LogConfig())
			}

			app.Strict = app.Config.Render.Strict
			if cmd.Flags().Changed("strict") {
				app.Strict, _ = cmd.Flags().GetBool("strict")
			}

			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().String("config", "", "config directory (default: ~/.config/instrument-model)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().Bool("strict", false, "fail on undeclared enumeration values")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newEnumsCmd())
	addProductCommands(rootCmd, app)
	addCatalogCommands(rootCmd, app)

	return rootCmd
}

// Catalog builds the configured catalog on first use.
func (a *App) Catalog() (*catalog.Catalog, error) {
	a.catalogOnce.Do(func() {
		a.catalog, a.catalogErr = catalog.FromConfig(a.Config.Catalog, a.Logger)
	})
	return a.catalog, a.catalogErr
}

// render renders p under the active policy and logs the outcome.
func (a *App) render(p products.Product) (string, error) {
	text, err := products.RenderWith(p, a.Strict)
	logging.LogRender(logging.WithOperation(a.Logger, "render"), p, text, err)
	return text, err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			output.Printf("products v%s\n", Version)
			output.Dim("Build date: %s", BuildDate)
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and validate application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Run: func(cmd *cobra.Command, args []string) {
			showConfig(NewOutput(cmd), app.Config)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			dir := app.ConfigDir
			if dir == "" {
				dir = config.DefaultConfigDir()
			}
			NewOutput(cmd).Println(dir)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate configuration and catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if err := app.Config.Validate(); err != nil {
				output.Error("Configuration validation failed: %v", err)
				return err
			}
			c, err := app.Catalog()
			if err != nil {
				var catErr *perrors.CatalogError
				if perrors.As(err, &catErr) {
					output.Error("Catalog entry %s #%d (%s) is invalid: %v", catErr.Kind, catErr.Index, catErr.ProductID, catErr.Err)
					return err
				}
				output.Error("Catalog validation failed: %v", err)
				return err
			}
			output.Success("Configuration is valid (%d catalog products)", c.Len())
			return nil
		},
	})

	return cmd
}

func showConfig(output *Output, cfg *config.Config) {
	output.Bold("Logging")
	output.Printf("  Level:       %s\n", cfg.Logging.Level)
	output.Printf("  Console:     %v\n", cfg.Logging.Console)
	output.Printf("  File:        %v\n", cfg.Logging.File)
	if cfg.Logging.File {
		output.Printf("  File Path:   %s\n", cfg.Logging.FilePath)
	}
	output.Println()

	output.Bold("Render")
	output.Printf("  Strict:      %v\n", cfg.Render.Strict)
	output.Printf("  Currency:    %s\n", cfg.Render.DefaultCurrency)
	output.Println()

	output.Bold("Catalog")
	output.Printf("  Bonds:       %d\n", len(cfg.Catalog.Bonds))
	output.Printf("  Swaps:       %d\n", len(cfg.Catalog.Swaps))
}
