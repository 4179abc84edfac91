package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	perrors "instrument-model/internal/errors"
	"instrument-model/pkg/products"
)

// addCatalogCommands adds commands over the configured catalog.
func addCatalogCommands(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Configured reference instruments",
		Long:  "List and inspect the instruments declared under [catalog] in config.toml.",
	}

	cmd.AddCommand(newCatalogListCmd(app))
	cmd.AddCommand(newCatalogShowCmd(app))

	rootCmd.AddCommand(cmd)
}

func newCatalogListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			c, err := app.Catalog()
			if err != nil {
				return err
			}
			if c.Len() == 0 {
				output.Info("Catalog is empty.")
				return nil
			}

			table := NewTable(output, "ID", "Type", "Rendering")
			for _, p := range c.All() {
				text, err := app.render(p)
				if err != nil {
					return err
				}
				table.AddRow(p.GetProductId(), string(p.GetProductType()), text)
			}
			table.Render()
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show every field of a catalog product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			c, err := app.Catalog()
			if err != nil {
				return err
			}
			p, err := c.Get(args[0])
			if perrors.Is(err, perrors.ErrProductNotFound) {
				output.Warning("No product %q in catalog; see 'products catalog list'", args[0])
				return err
			}
			if err != nil {
				return err
			}
			text, err := app.render(p)
			if err != nil {
				return err
			}

			output.Bold("%s (%s)", p.GetProductId(), p.GetProductType())
			for _, f := range productFields(p) {
				output.Printf("  %-20s %s\n", f[0]+":", f[1])
			}
			output.Println()
			output.Println(text)
			return nil
		},
	}
}

// productFields lists label/value pairs for the variant behind p.
func productFields(p products.Product) [][2]string {
	switch v := p.(type) {
	case *products.Bond:
		return [][2]string{
			{"Bond ID Type", string(v.GetBondIdType())},
			{"Ticker", v.GetTicker()},
			{"Coupon", products.FormatCoupon(v.GetCoupon())},
			{"Maturity", v.GetMaturityDate().String()},
		}
	case *products.InterestRateSwap:
		return [][2]string{
			{"Fixed Day Count", v.GetFixedLegDayCountConvention().String()},
			{"Floating Day Count", v.GetFloatingLegDayCountConvention().String()},
			{"Payment Frequency", v.GetFixedLegPaymentFrequency().String()},
			{"Floating Index", v.GetFloatingIndex().String()},
			{"Index Tenor", v.GetFloatingIndexTenor().String()},
			{"Effective", v.GetEffectiveDate().String()},
			{"Termination", v.GetTerminationDate().String()},
			{"Currency", v.GetCurrency().String()},
			{"Term Years", strconv.Itoa(v.GetTermYears())},
			{"Swap Type", v.GetSwapType().String()},
			{"Leg Type", v.GetSwapLegType().String()},
		}
	default:
		return nil
	}
}
