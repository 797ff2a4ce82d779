package pricing

import (
	"errors"
	"math"
	"sort"
	"time"

	"printhub/internal/domain/entities"
)

var (
	ErrInvalidProductType = errors.New("invalid product type")
	ErrInvalidQuantity    = errors.New("missing or invalid quantity")
)

const (
	// TaxRate is the flat VAT applied to every quote.
	TaxRate = 0.05
	// DefaultCurrency is stamped on every quote.
	DefaultCurrency = "AED"
	// QuoteValidity is how long a quote stays valid after calculation.
	QuoteValidity = 30 * 24 * time.Hour

	// areaPricedProduct is priced by physical area instead of unit count
	// whenever the request carries dimensions.
	areaPricedProduct = "banners"

	PaperStandard  = "standard"
	PaperPremium   = "premium"
	PaperSpecialty = "specialty"

	FinishNone   = "none"
	FinishGlossy = "glossy"
	FinishMatte  = "matte"
	FinishUV     = "uv"
)

// QuoteRequest is one print-job pricing request.
//
// Optional fields default to standard paper, no finish, single-sided, no rush.
// Unrecognized paper/finish values simply apply no modifier.
type QuoteRequest struct {
	ProductType string               `json:"product_type"`
	Quantity    int                  `json:"quantity"`
	PaperType   string               `json:"paper_type,omitempty"`
	Finish      string               `json:"finish,omitempty"`
	Sides       int                  `json:"sides,omitempty"`
	RushJob     bool                 `json:"rush_job,omitempty"`
	Dimensions  *entities.Dimensions `json:"dimensions,omitempty"`
}

func (r QuoteRequest) withDefaults() QuoteRequest {
	if r.PaperType == "" {
		r.PaperType = PaperStandard
	}
	if r.Finish == "" {
		r.Finish = FinishNone
	}
	if r.Sides == 0 {
		r.Sides = 1
	}
	return r
}

// BulkItem is one slot of a bulk calculation result. Exactly one of Quote or
// Err is set; Item echoes the request that failed.
type BulkItem struct {
	Quote *entities.Quote
	Err   error
	Item  QuoteRequest
}

// BulkQuote is the aggregate result of a bulk calculation. Items keep the
// input order; TotalAmount sums only the successful quotes.
type BulkQuote struct {
	Items       []BulkItem
	TotalAmount float64
	Currency    string
}

// Estimator computes price quotes from a static pricing table.
//
// It holds no mutable state and is safe for concurrent use.
type Estimator struct {
	table Table
	now   func() time.Time
}

func NewEstimator(table Table) *Estimator {
	return &Estimator{table: table, now: time.Now}
}

// Table returns a copy of the pricing configuration for client display.
func (e *Estimator) Table() Table {
	return e.table.Copy()
}

// Calculate prices a single print job.
//
// The modifier pipeline runs in a fixed order: quantity-break unit price,
// paper, finish, double-sided, rush, then the area override for
// dimension-priced products. Modifier amounts for paper are recorded from the
// post-multiplication subtotal, and the area override re-applies recorded flat
// amounts verbatim rather than recomputing them against the new base; both
// behaviors are intentional and locked in by tests.
func (e *Estimator) Calculate(req QuoteRequest) (entities.Quote, error) {
	req = req.withDefaults()

	if req.ProductType == "" {
		return entities.Quote{}, ErrInvalidProductType
	}
	cfg, ok := e.table[req.ProductType]
	if !ok {
		return entities.Quote{}, ErrInvalidProductType
	}
	if req.Quantity <= 0 {
		return entities.Quote{}, ErrInvalidQuantity
	}

	qty := float64(req.Quantity)

	unitPrice := cfg.BasePrice
	thresholds := make([]int, 0, len(cfg.QuantityBreaks))
	for q := range cfg.QuantityBreaks {
		thresholds = append(thresholds, q)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(thresholds)))
	for _, breakPoint := range thresholds {
		if req.Quantity >= breakPoint {
			unitPrice = cfg.QuantityBreaks[breakPoint]
			break
		}
	}

	subtotal := unitPrice*qty + cfg.SetupFee
	var modifiers []entities.Modifier

	switch req.PaperType {
	case PaperPremium:
		subtotal *= 1.25
		modifiers = append(modifiers, entities.Modifier{Type: "Premium Paper", Multiplier: 1.25, Amount: subtotal * 0.25})
	case PaperSpecialty:
		subtotal *= 1.5
		modifiers = append(modifiers, entities.Modifier{Type: "Specialty Paper", Multiplier: 1.5, Amount: subtotal * 0.5})
	}

	switch req.Finish {
	case FinishGlossy, FinishMatte:
		cost := qty * 0.1
		subtotal += cost
		modifiers = append(modifiers, entities.Modifier{Type: "Lamination/Finish", Multiplier: 1, Amount: cost})
	case FinishUV:
		cost := qty * 0.25
		subtotal += cost
		modifiers = append(modifiers, entities.Modifier{Type: "UV Coating", Multiplier: 1, Amount: cost})
	}

	if req.Sides == 2 {
		cost := subtotal * 0.3
		subtotal += cost
		modifiers = append(modifiers, entities.Modifier{Type: "Double-sided Printing", Multiplier: 1.3, Amount: cost})
	}

	if req.RushJob {
		cost := subtotal * 0.5
		subtotal += cost
		modifiers = append(modifiers, entities.Modifier{Type: "Rush Job Fee", Multiplier: 1.5, Amount: cost})
	}

	if req.ProductType == areaPricedProduct && req.Dimensions != nil &&
		req.Dimensions.Width > 0 && req.Dimensions.Height > 0 {
		// cm² → m²
		area := (req.Dimensions.Width * req.Dimensions.Height) / 10000
		subtotal = cfg.BasePrice*area*qty + cfg.SetupFee
		for _, mod := range modifiers {
			if mod.Multiplier > 1 {
				subtotal *= mod.Multiplier
			} else {
				subtotal += mod.Amount
			}
		}
	}

	taxAmount := subtotal * TaxRate
	total := subtotal + taxAmount

	now := e.now().UTC()
	if modifiers == nil {
		modifiers = []entities.Modifier{}
	}
	return entities.Quote{
		ProductType: req.ProductType,
		Quantity:    req.Quantity,
		PaperType:   req.PaperType,
		Finish:      req.Finish,
		Sides:       req.Sides,
		RushJob:     req.RushJob,
		Dimensions:  req.Dimensions,
		UnitPrice:   unitPrice,
		BaseAmount:  unitPrice * qty,
		SetupFee:    cfg.SetupFee,
		Modifiers:   modifiers,
		Subtotal:    round2(subtotal),
		TaxRate:     TaxRate,
		TaxAmount:   round2(taxAmount),
		Total:       round2(total),
		Currency:    DefaultCurrency,
		ValidUntil:  now.Add(QuoteValidity),
		CreatedAt:   now,
	}, nil
}

// CalculateBulk prices every item independently. A failed item occupies its
// original slot with the error and the offending request; it never aborts the
// batch or contributes to the aggregate total.
func (e *Estimator) CalculateBulk(reqs []QuoteRequest) BulkQuote {
	items := make([]BulkItem, 0, len(reqs))
	var total float64
	for _, req := range reqs {
		q, err := e.Calculate(req)
		if err != nil {
			items = append(items, BulkItem{Err: err, Item: req})
			continue
		}
		total += q.Total
		items = append(items, BulkItem{Quote: &q})
	}
	return BulkQuote{
		Items:       items,
		TotalAmount: round2(total),
		Currency:    DefaultCurrency,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
