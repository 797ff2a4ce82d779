package request

import (
	"strings"

	"printhub/internal/domain/entities"
	"printhub/internal/domain/pricing"
)

// DimensionsRequest is a physical size in centimeters.
type DimensionsRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CalculateRequest is the payload for single-item quote calculation.
//
// product_type and quantity are validated by the estimator so that the error
// responses match the estimator's own taxonomy instead of binding failures.
type CalculateRequest struct {
	ProductType string             `json:"product_type"`
	Quantity    int                `json:"quantity"`
	PaperType   string             `json:"paper_type"`
	Finish      string             `json:"finish"`
	Sides       int                `json:"sides"`
	RushJob     bool               `json:"rush_job"`
	Dimensions  *DimensionsRequest `json:"dimensions"`
}

func (r CalculateRequest) ToQuoteRequest() pricing.QuoteRequest {
	req := pricing.QuoteRequest{
		ProductType: strings.TrimSpace(r.ProductType),
		Quantity:    r.Quantity,
		PaperType:   r.PaperType,
		Finish:      r.Finish,
		Sides:       r.Sides,
		RushJob:     r.RushJob,
	}
	if r.Dimensions != nil {
		req.Dimensions = &entities.Dimensions{Width: r.Dimensions.Width, Height: r.Dimensions.Height}
	}
	return req
}

// BulkCalculateRequest is the payload for batch quote calculation.
// A nil Items slice means the field was absent and is rejected.
type BulkCalculateRequest struct {
	Items []CalculateRequest `json:"items"`
}

func (r BulkCalculateRequest) ToQuoteRequests() []pricing.QuoteRequest {
	reqs := make([]pricing.QuoteRequest, 0, len(r.Items))
	for _, item := range r.Items {
		reqs = append(reqs, item.ToQuoteRequest())
	}
	return reqs
}

// SaveEstimateRequest persists a previously calculated quote for a client.
type SaveEstimateRequest struct {
	ClientID     string          `json:"client_id"`
	ProjectID    string          `json:"project_id"`
	EstimateData *entities.Quote `json:"estimate_data"`
	Notes        string          `json:"notes"`
	Status       string          `json:"status"`
}

// UpdateStatusRequest moves a saved estimate through its lifecycle.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
