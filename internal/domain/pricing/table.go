package pricing

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed pricing.yaml
var defaultTableYAML []byte

// ProductPricing is the pricing entry for one product type.
//
// QuantityBreaks maps a minimum order quantity to the discounted unit price.
// Thresholds are not required to be sorted; resolution always walks them from
// highest to lowest.
type ProductPricing struct {
	BasePrice      float64         `yaml:"base_price" json:"base_price"`
	SetupFee       float64         `yaml:"setup_fee" json:"setup_fee"`
	QuantityBreaks map[int]float64 `yaml:"quantity_breaks" json:"quantity_breaks"`
}

// Table is the static pricing configuration keyed by product type.
// It is loaded once at startup and never mutated afterwards.
type Table map[string]ProductPricing

// ParseTable decodes a YAML pricing table and rejects entries that could
// never price an order.
func ParseTable(data []byte) (Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse pricing table: %w", err)
	}
	if len(t) == 0 {
		return nil, fmt.Errorf("parse pricing table: no product types defined")
	}
	for name, p := range t {
		if p.BasePrice <= 0 {
			return nil, fmt.Errorf("parse pricing table: product %q has no base price", name)
		}
		if p.SetupFee < 0 {
			return nil, fmt.Errorf("parse pricing table: product %q has negative setup fee", name)
		}
	}
	return t, nil
}

// DefaultTable returns the embedded pricing configuration.
// The embedded artifact is validated by tests, so a decode failure here is a
// build defect and panics.
func DefaultTable() Table {
	t, err := ParseTable(defaultTableYAML)
	if err != nil {
		panic(err)
	}
	return t
}

// Copy returns a deep copy of the table, safe to hand to callers that must
// not be able to mutate the estimator's configuration.
func (t Table) Copy() Table {
	out := make(Table, len(t))
	for name, p := range t {
		breaks := make(map[int]float64, len(p.QuantityBreaks))
		for q, price := range p.QuantityBreaks {
			breaks[q] = price
		}
		out[name] = ProductPricing{
			BasePrice:      p.BasePrice,
			SetupFee:       p.SetupFee,
			QuantityBreaks: breaks,
		}
	}
	return out
}
