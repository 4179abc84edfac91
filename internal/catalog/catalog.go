// Package catalog builds a read-only registry of instruments from the
// configured reference data.
package catalog

import (
	"time"

	"github.com/rs/zerolog"

	"instrument-model/internal/config"
	perrors "instrument-model/internal/errors"
	"instrument-model/internal/logging"
	"instrument-model/pkg/products"
)

// Catalog is an ordered, immutable set of products keyed by product id.
// It is safe for concurrent readers once built.
type Catalog struct {
	items []products.Product
	byID  map[string]products.Product
}

// New builds a Catalog from already constructed products. Every product
// must pass Validate and ids must be unique.
func New(items ...products.Product) (*Catalog, error) {
	c := &Catalog{
		items: make([]products.Product, 0, len(items)),
		byID:  make(map[string]products.Product, len(items)),
	}
	for _, p := range items {
		if err := c.add(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) add(p products.Product) error {
	if p == nil {
		return perrors.ErrUnknownProductType
	}
	if err := p.Validate(); err != nil {
		return err
	}
	id := p.GetProductId()
	if _, dup := c.byID[id]; dup {
		return perrors.Wrapf(perrors.ErrDuplicateProduct, "%s", id)
	}
	c.items = append(c.items, p)
	c.byID[id] = p
	return nil
}

// FromConfig builds a Catalog from the [catalog] section of config.toml.
// Bonds come first, then swaps, each in file order.
func FromConfig(cfg config.CatalogConfig, logger zerolog.Logger) (*Catalog, error) {
	start := time.Now()
	c, err := fromConfig(cfg)
	n := 0
	if c != nil {
		n = c.Len()
	}
	logging.LogCatalogLoad(logger, n, time.Since(start), err)
	return c, err
}

func fromConfig(cfg config.CatalogConfig) (*Catalog, error) {
	c, _ := New()
	for i, spec := range cfg.Bonds {
		b, err := BondFromSpec(spec)
		if err == nil {
			err = c.add(b)
		}
		if err != nil {
			return nil, perrors.NewCatalogError("bond", i, spec.ID, err)
		}
	}
	for i, spec := range cfg.Swaps {
		s, err := SwapFromSpec(spec)
		if err == nil {
			err = c.add(s)
		}
		if err != nil {
			return nil, perrors.NewCatalogError("swap", i, spec.ID, err)
		}
	}
	return c, nil
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.items)
}

// All returns the products in catalog order.
func (c *Catalog) All() []products.Product {
	out := make([]products.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (products.Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, perrors.Wrapf(perrors.ErrProductNotFound, "%s", id)
	}
	return p, nil
}

// Bonds returns the bonds in catalog order.
func (c *Catalog) Bonds() []*products.Bond {
	var out []*products.Bond
	for _, p := range c.items {
		if b, ok := p.(*products.Bond); ok {
			out = append(out, b)
		}
	}
	return out
}

// Swaps returns the interest rate swaps in catalog order.
func (c *Catalog) Swaps() []*products.InterestRateSwap {
	var out []*products.InterestRateSwap
	for _, p := range c.items {
		if s, ok := p.(*products.InterestRateSwap); ok {
			out = append(out, s)
		}
	}
	return out
}
