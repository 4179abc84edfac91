package cli

import (
	"github.com/spf13/cobra"

	"instrument-model/pkg/products"
)

func newEnumsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enums",
		Short: "List enumeration members and their display text",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			table := NewTable(output, "Enumeration", "Member", "Text")
			for _, t := range products.ProductTypes {
				table.AddRow("ProductType", string(t), string(t))
			}
			addEnumRows(table, "BondIDType", products.BondIDTypes)
			addEnumRows(table, "DayCountConvention", products.DayCountConventions)
			addEnumRows(table, "PaymentFrequency", products.PaymentFrequencies)
			addEnumRows(table, "FloatingIndex", products.FloatingIndexes)
			addEnumRows(table, "FloatingIndexTenor", products.FloatingIndexTenors)
			addEnumRows(table, "Currency", products.Currencies)
			addEnumRows(table, "SwapType", products.SwapTypes)
			addEnumRows(table, "SwapLegType", products.SwapLegTypes)
			table.Render()
		},
	}
}

func addEnumRows[T interface {
	~string
	String() string
}](table *Table, name string, members []T) {
	for _, m := range members {
		table.AddRow(name, string(m), m.String())
	}
}
