package response

import (
	"time"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/pricing"
)

// QuoteResponse is the serialized form of one calculated quote.
type QuoteResponse struct {
	ProductType string               `json:"product_type"`
	Quantity    int                  `json:"quantity"`
	PaperType   string               `json:"paper_type"`
	Finish      string               `json:"finish"`
	Sides       int                  `json:"sides"`
	RushJob     bool                 `json:"rush_job"`
	Dimensions  *entities.Dimensions `json:"dimensions,omitempty"`
	UnitPrice   float64              `json:"unit_price"`
	BaseAmount  float64              `json:"base_amount"`
	SetupFee    float64              `json:"setup_fee"`
	Modifiers   []entities.Modifier  `json:"modifiers"`
	Subtotal    float64              `json:"subtotal"`
	TaxRate     float64              `json:"tax_rate"`
	TaxAmount   float64              `json:"tax_amount"`
	Total       float64              `json:"total"`
	Currency    string               `json:"currency"`
	ValidUntil  time.Time            `json:"valid_until"`
	CreatedAt   time.Time            `json:"created_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ProductType: q.ProductType,
		Quantity:    q.Quantity,
		PaperType:   q.PaperType,
		Finish:      q.Finish,
		Sides:       q.Sides,
		RushJob:     q.RushJob,
		Dimensions:  q.Dimensions,
		UnitPrice:   q.UnitPrice,
		BaseAmount:  q.BaseAmount,
		SetupFee:    q.SetupFee,
		Modifiers:   q.Modifiers,
		Subtotal:    q.Subtotal,
		TaxRate:     q.TaxRate,
		TaxAmount:   q.TaxAmount,
		Total:       q.Total,
		Currency:    q.Currency,
		ValidUntil:  q.ValidUntil,
		CreatedAt:   q.CreatedAt,
	}
}

// BulkItemResponse is one slot of a bulk calculation. Successful items carry
// the quote fields; failed items carry error plus the offending request.
type BulkItemResponse struct {
	*QuoteResponse
	Error string                `json:"error,omitempty"`
	Item  *pricing.QuoteRequest `json:"item,omitempty"`
}

type BulkQuoteResponse struct {
	Estimates   []BulkItemResponse `json:"estimates"`
	TotalAmount float64            `json:"total_amount"`
	Currency    string             `json:"currency"`
}

func FromBulkQuote(b pricing.BulkQuote) BulkQuoteResponse {
	estimates := make([]BulkItemResponse, 0, len(b.Items))
	for _, item := range b.Items {
		if item.Err != nil {
			req := item.Item
			estimates = append(estimates, BulkItemResponse{Error: item.Err.Error(), Item: &req})
			continue
		}
		qr := FromQuote(*item.Quote)
		estimates = append(estimates, BulkItemResponse{QuoteResponse: &qr})
	}
	return BulkQuoteResponse{
		Estimates:   estimates,
		TotalAmount: b.TotalAmount,
		Currency:    b.Currency,
	}
}

// EstimateResponse is the serialized form of one saved estimate.
type EstimateResponse struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	ProjectID   string        `json:"project_id,omitempty"`
	Quote       QuoteResponse `json:"estimate_data"`
	Notes       string        `json:"notes,omitempty"`
	Status      string        `json:"status"`
	TotalAmount float64       `json:"total_amount"`
	Currency    string        `json:"currency"`
	ValidUntil  time.Time     `json:"valid_until"`
	ApprovedAt  *time.Time    `json:"approved_at,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:          e.ID,
		ClientID:    e.ClientID,
		ProjectID:   e.ProjectID,
		Quote:       FromQuote(e.Quote),
		Notes:       e.Notes,
		Status:      string(e.Status),
		TotalAmount: e.TotalAmount,
		Currency:    e.Currency,
		ValidUntil:  e.ValidUntil,
		ApprovedAt:  e.ApprovedAt,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func FromEstimates(estimates []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(estimates))
	for _, e := range estimates {
		out = append(out, FromEstimate(e))
	}
	return out
}
