package request

import (
	"testing"
)

func TestCalculateRequest_ToQuoteRequest(t *testing.T) {
	t.Run("maps dimensions", func(t *testing.T) {
		r := CalculateRequest{
			ProductType: " banners ",
			Quantity:    5,
			RushJob:     true,
			Dimensions:  &DimensionsRequest{Width: 200, Height: 100},
		}
		q := r.ToQuoteRequest()
		if q.ProductType != "banners" {
			t.Fatalf("expected trimmed product type, got %q", q.ProductType)
		}
		if q.Dimensions == nil || q.Dimensions.Width != 200 || q.Dimensions.Height != 100 {
			t.Fatalf("unexpected dimensions: %+v", q.Dimensions)
		}
		if !q.RushJob {
			t.Fatalf("expected rush job flag")
		}
	})

	t.Run("omits absent dimensions", func(t *testing.T) {
		q := CalculateRequest{ProductType: "flyers", Quantity: 100}.ToQuoteRequest()
		if q.Dimensions != nil {
			t.Fatalf("expected nil dimensions, got %+v", q.Dimensions)
		}
	})
}

func TestBulkCalculateRequest_ToQuoteRequests(t *testing.T) {
	r := BulkCalculateRequest{Items: []CalculateRequest{
		{ProductType: "flyers", Quantity: 100},
		{ProductType: "widgets", Quantity: 1},
	}}
	reqs := r.ToQuoteRequests()
	if len(reqs) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(reqs))
	}
	if reqs[0].ProductType != "flyers" || reqs[1].ProductType != "widgets" {
		t.Fatalf("order not preserved: %+v", reqs)
	}
}
