package catalog

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"instrument-model/internal/config"
	perrors "instrument-model/internal/errors"
	"instrument-model/pkg/products"
)

func sampleConfig() config.CatalogConfig {
	return config.CatalogConfig{
		Bonds: []config.BondSpec{
			{ID: "91282CEN7", IDType: "CUSIP", Ticker: "T 2.5 05/31/27", Coupon: 0.025, Maturity: "2027-05-31"},
		},
		Swaps: []config.SwapSpec{
			{
				ID:               "IRS-USD-5Y",
				FixedDayCount:    "30/360",
				FloatingDayCount: "Act/360",
				PaymentFrequency: "Semi-Annual",
				Index:            "LIBOR",
				Tenor:            "3M",
				Effective:        "2025-01-15",
				Termination:      "2030-01-15",
				Currency:         "USD",
				TermYears:        5,
				SwapType:         "Standard",
				LegType:          "Outright",
			},
		},
	}
}

func TestFromConfig(t *testing.T) {
	c, err := FromConfig(sampleConfig(), zerolog.Nop())
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	all := c.All()
	assert.Equal(t, products.ProductTypeBond, all[0].GetProductType())
	assert.Equal(t, products.ProductTypeInterestRateSwap, all[1].GetProductType())

	assert.Equal(t, "T 2.5 05/31/27 0.025 2027-05-31", all[0].String())
	assert.Equal(t, "fixedDayCount:30/360 floatingDayCount:Act/360 paymentFreq:Semi-Annual 3mLIBOR "+
		"effective:2025-01-15 termination:2030-01-15 USD 5yrs Standard Outright", all[1].String())

	require.Len(t, c.Bonds(), 1)
	require.Len(t, c.Swaps(), 1)
	assert.Equal(t, 5, c.Swaps()[0].GetTermYears())
}

func TestGet(t *testing.T) {
	c, err := FromConfig(sampleConfig(), zerolog.Nop())
	require.NoError(t, err)

	p, err := c.Get("IRS-USD-5Y")
	require.NoError(t, err)
	_, ok := p.(*products.InterestRateSwap)
	assert.True(t, ok)

	_, err = c.Get("missing")
	assert.True(t, errors.Is(err, perrors.ErrProductNotFound))
}

func TestFromConfig_Errors(t *testing.T) {
	cfg := sampleConfig()
	cfg.Swaps[0].Currency = "JPY"
	_, err := FromConfig(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, perrors.ErrInvalidEnumValue))

	var catErr *perrors.CatalogError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "swap", catErr.Kind)
	assert.Equal(t, "IRS-USD-5Y", catErr.ProductID)

	cfg = sampleConfig()
	cfg.Bonds[0].Maturity = "2027-02-30"
	_, err = FromConfig(cfg, zerolog.Nop())
	assert.True(t, errors.Is(err, perrors.ErrInvalidDate))

	cfg = sampleConfig()
	cfg.Bonds[0].Ticker = ""
	_, err = FromConfig(cfg, zerolog.Nop())
	assert.True(t, errors.Is(err, perrors.ErrMissingField))

	cfg = sampleConfig()
	cfg.Bonds = append(cfg.Bonds, cfg.Bonds[0])
	_, err = FromConfig(cfg, zerolog.Nop())
	assert.True(t, errors.Is(err, perrors.ErrDuplicateProduct))
}

func TestNew(t *testing.T) {
	b := products.NewBond("B1", products.ISIN, "UKT 4 60", 0.04, products.NewDate(2060, time.January, 22))
	c, err := New(b)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = New(b, b)
	assert.True(t, errors.Is(err, perrors.ErrDuplicateProduct))

	_, err = New(nil)
	assert.True(t, errors.Is(err, perrors.ErrUnknownProductType))
}

func TestConcurrentReads(t *testing.T) {
	c, err := FromConfig(sampleConfig(), zerolog.Nop())
	require.NoError(t, err)

	want := make(map[string]string)
	for _, p := range c.All() {
		want[p.GetProductId()] = p.String()
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id, text := range want {
				p, err := c.Get(id)
				if err != nil || p.String() != text {
					t.Errorf("concurrent read of %s returned %v", id, err)
				}
			}
		}()
	}
	wg.Wait()
}
