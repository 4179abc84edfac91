package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"instrument-model/internal/catalog"
	"instrument-model/internal/config"
	"instrument-model/pkg/products"
)

// addProductCommands adds the bond and swap construction commands.
func addProductCommands(rootCmd *cobra.Command, app *App) {
	rootCmd.AddCommand(newBondCmd(app))
	rootCmd.AddCommand(newSwapCmd(app))
}

func newBondCmd(app *App) *cobra.Command {
	var spec config.BondSpec

	cmd := &cobra.Command{
		Use:   "bond",
		Short: "Build and render a bond",
		Example: `  products bond --ticker "T 2.5 05/31/27" --coupon 0.025 --maturity 2027-05-31
  products bond --id US91282CEN76 --id-type ISIN --ticker "T 2.5 05/31/27" --coupon 0.025 --maturity 2027-05-31`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if spec.ID == "" {
				spec.ID = uuid.NewString()
			}
			b, err := catalog.BondFromSpec(spec)
			if err != nil {
				return err
			}
			return printProduct(cmd, app, b)
		},
	}

	cmd.Flags().StringVar(&spec.ID, "id", "", "product id (default: generated)")
	cmd.Flags().StringVar(&spec.IDType, "id-type", string(products.CUSIP), "identifier scheme: CUSIP, ISIN")
	cmd.Flags().StringVar(&spec.Ticker, "ticker", "", "ticker or short name")
	cmd.Flags().Float64Var(&spec.Coupon, "coupon", 0, "annual coupon as a decimal fraction (0.025 = 2.5%)")
	cmd.Flags().StringVar(&spec.Maturity, "maturity", "", "maturity date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("ticker")
	_ = cmd.MarkFlagRequired("maturity")

	return cmd
}

func newSwapCmd(app *App) *cobra.Command {
	var spec config.SwapSpec

	cmd := &cobra.Command{
		Use:   "swap",
		Short: "Build and render an interest rate swap",
		Example: `  products swap --effective 2025-01-15 --termination 2030-01-15 --term-years 5
  products swap --index EURIBOR --tenor 6M --currency EUR --effective 2025-03-19 --termination 2035-03-19 --term-years 10 --swap-type IMM`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if spec.ID == "" {
				spec.ID = uuid.NewString()
			}
			if spec.Currency == "" {
				spec.Currency = string(app.Config.DefaultCurrency())
			}
			s, err := catalog.SwapFromSpec(spec)
			if err != nil {
				return err
			}
			return printProduct(cmd, app, s)
		},
	}

	f := cmd.Flags()
	f.StringVar(&spec.ID, "id", "", "product id (default: generated)")
	f.StringVar(&spec.FixedDayCount, "fixed-day-count", "30/360", "fixed leg day count: 30/360, Act/360")
	f.StringVar(&spec.FloatingDayCount, "floating-day-count", "Act/360", "floating leg day count: 30/360, Act/360")
	f.StringVar(&spec.PaymentFrequency, "payment-frequency", "Semi-Annual", "fixed leg frequency: Quarterly, Semi-Annual, Annual")
	f.StringVar(&spec.Index, "index", "LIBOR", "floating index: LIBOR, EURIBOR")
	f.StringVar(&spec.Tenor, "tenor", "3M", "floating index tenor: 1M, 3M, 6M, 12M")
	f.StringVar(&spec.Effective, "effective", "", "effective date YYYY-MM-DD")
	f.StringVar(&spec.Termination, "termination", "", "termination date YYYY-MM-DD")
	f.StringVar(&spec.Currency, "currency", "", "currency: USD, EUR, GBP (default: render.default_currency)")
	f.IntVar(&spec.TermYears, "term-years", 0, "term in whole years")
	f.StringVar(&spec.SwapType, "swap-type", "Standard", "swap type: Standard, Forward, IMM, MAC, Basis")
	f.StringVar(&spec.LegType, "leg-type", "Outright", "leg type: Outright, Curve, Fly")
	_ = cmd.MarkFlagRequired("effective")
	_ = cmd.MarkFlagRequired("termination")
	_ = cmd.MarkFlagRequired("term-years")

	return cmd
}

func printProduct(cmd *cobra.Command, app *App, p products.Product) error {
	text, err := app.render(p)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", p.GetProductId(), err)
	}
	NewOutput(cmd).Println(text)
	return nil
}
