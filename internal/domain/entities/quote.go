package entities

import "time"

// Modifier is one named price adjustment applied while building a quote.
//
// Multiplicative modifiers (multiplier > 1) scale the running subtotal;
// additive ones carry multiplier 1 and the flat amount that was added.
type Modifier struct {
	Type       string  `json:"type"`
	Multiplier float64 `json:"multiplier"`
	Amount     float64 `json:"amount"`
}

// Dimensions is a physical size in centimeters. Only meaningful for
// area-priced products (banners).
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Quote is the result of one estimator calculation.
//
// It echoes the request fields and carries the full price breakdown.
// A Quote is built fresh on every calculation and is never mutated after
// being returned; Subtotal, TaxAmount and Total are rounded to 2 decimals.
type Quote struct {
	ProductType string      `json:"product_type"`
	Quantity    int         `json:"quantity"`
	PaperType   string      `json:"paper_type"`
	Finish      string      `json:"finish"`
	Sides       int         `json:"sides"`
	RushJob     bool        `json:"rush_job"`
	Dimensions  *Dimensions `json:"dimensions,omitempty"`

	UnitPrice  float64    `json:"unit_price"`
	BaseAmount float64    `json:"base_amount"`
	SetupFee   float64    `json:"setup_fee"`
	Modifiers  []Modifier `json:"modifiers"`
	Subtotal   float64    `json:"subtotal"`
	TaxRate    float64    `json:"tax_rate"`
	TaxAmount  float64    `json:"tax_amount"`
	Total      float64    `json:"total"`
	Currency   string     `json:"currency"`
	ValidUntil time.Time  `json:"valid_until"`
	CreatedAt  time.Time  `json:"created_at"`
}
