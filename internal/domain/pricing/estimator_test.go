package pricing

import (
	"errors"
	"math"
	"testing"
	"time"

	"printhub/internal/domain/entities"
)

func fixedEstimator(t *testing.T) *Estimator {
	t.Helper()
	e := NewEstimator(DefaultTable())
	e.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return e
}

func approxEq(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimator_Calculate_QuantityBreaks(t *testing.T) {
	e := fixedEstimator(t)

	t.Run("resolves highest threshold not exceeding quantity", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "business_cards", Quantity: 1000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.UnitPrice != 0.12 {
			t.Fatalf("expected unit price 0.12, got %v", q.UnitPrice)
		}
		if !approxEq(q.BaseAmount, 120) {
			t.Fatalf("expected base amount 120, got %v", q.BaseAmount)
		}
		if q.SetupFee != 25 {
			t.Fatalf("expected setup fee 25, got %v", q.SetupFee)
		}
		if q.Subtotal != 145 || q.TaxAmount != 7.25 || q.Total != 152.25 {
			t.Fatalf("unexpected totals: subtotal=%v tax=%v total=%v", q.Subtotal, q.TaxAmount, q.Total)
		}
	})

	t.Run("falls back to base price below all thresholds", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "business_cards", Quantity: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.UnitPrice != 0.15 {
			t.Fatalf("expected base price 0.15, got %v", q.UnitPrice)
		}
	})

	t.Run("unit price is non-increasing across breaks", func(t *testing.T) {
		prev := math.Inf(1)
		for _, qty := range []int{1, 500, 1000, 2000, 5000, 10000} {
			q, err := e.Calculate(QuoteRequest{ProductType: "business_cards", Quantity: qty})
			if err != nil {
				t.Fatalf("qty %d: unexpected error: %v", qty, err)
			}
			if q.UnitPrice > prev {
				t.Fatalf("qty %d: unit price %v increased from %v", qty, q.UnitPrice, prev)
			}
			prev = q.UnitPrice
		}
	})
}

func TestEstimator_Calculate_Modifiers(t *testing.T) {
	e := fixedEstimator(t)

	t.Run("premium paper", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "business_cards", Quantity: 1000, PaperType: PaperPremium})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Subtotal != 181.25 || q.TaxAmount != 9.06 || q.Total != 190.31 {
			t.Fatalf("unexpected totals: subtotal=%v tax=%v total=%v", q.Subtotal, q.TaxAmount, q.Total)
		}
		if len(q.Modifiers) != 1 {
			t.Fatalf("expected 1 modifier, got %d", len(q.Modifiers))
		}
		m := q.Modifiers[0]
		if m.Type != "Premium Paper" || m.Multiplier != 1.25 {
			t.Fatalf("unexpected modifier: %+v", m)
		}
		// Amount is taken from the post-multiplication subtotal.
		if !approxEq(m.Amount, 181.25*0.25) {
			t.Fatalf("expected amount %v, got %v", 181.25*0.25, m.Amount)
		}
	})

	t.Run("specialty paper", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100, PaperType: PaperSpecialty})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// (0.35*100 + 20) * 1.5 = 82.5
		if q.Subtotal != 82.5 {
			t.Fatalf("expected subtotal 82.5, got %v", q.Subtotal)
		}
		if q.Modifiers[0].Type != "Specialty Paper" || !approxEq(q.Modifiers[0].Amount, 82.5*0.5) {
			t.Fatalf("unexpected modifier: %+v", q.Modifiers[0])
		}
	})

	t.Run("glossy and matte share the lamination rate", func(t *testing.T) {
		for _, finish := range []string{FinishGlossy, FinishMatte} {
			q, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100, Finish: finish})
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", finish, err)
			}
			// 0.35*100 + 20 + 100*0.1 = 65
			if q.Subtotal != 65 {
				t.Fatalf("%s: expected subtotal 65, got %v", finish, q.Subtotal)
			}
			if q.Modifiers[0].Type != "Lamination/Finish" || !approxEq(q.Modifiers[0].Amount, 10) {
				t.Fatalf("%s: unexpected modifier: %+v", finish, q.Modifiers[0])
			}
		}
	})

	t.Run("uv coating", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100, Finish: FinishUV})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 0.35*100 + 20 + 100*0.25 = 80
		if q.Subtotal != 80 {
			t.Fatalf("expected subtotal 80, got %v", q.Subtotal)
		}
		if q.Modifiers[0].Type != "UV Coating" {
			t.Fatalf("unexpected modifier: %+v", q.Modifiers[0])
		}
	})

	t.Run("double sided then rush stack in order", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100, Sides: 2, RushJob: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// base 55, +30% = 71.5, +50% = 107.25
		if q.Subtotal != 107.25 {
			t.Fatalf("expected subtotal 107.25, got %v", q.Subtotal)
		}
		if len(q.Modifiers) != 2 {
			t.Fatalf("expected 2 modifiers, got %d", len(q.Modifiers))
		}
		if q.Modifiers[0].Type != "Double-sided Printing" || !approxEq(q.Modifiers[0].Amount, 16.5) {
			t.Fatalf("unexpected double-sided modifier: %+v", q.Modifiers[0])
		}
		if q.Modifiers[1].Type != "Rush Job Fee" || !approxEq(q.Modifiers[1].Amount, 35.75) {
			t.Fatalf("unexpected rush modifier: %+v", q.Modifiers[1])
		}
	})

	t.Run("unrecognized enum values apply no modifier", func(t *testing.T) {
		plain, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		odd, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100, PaperType: "recycled", Finish: "embossed", Sides: 3})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if odd.Subtotal != plain.Subtotal || odd.Total != plain.Total || len(odd.Modifiers) != 0 {
			t.Fatalf("expected unmodified totals, got %+v", odd)
		}
	})
}

func TestEstimator_Calculate_AreaOverride(t *testing.T) {
	e := fixedEstimator(t)

	t.Run("banner with dimensions and rush", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{
			ProductType: "banners",
			Quantity:    5,
			RushJob:     true,
			Dimensions:  &entities.Dimensions{Width: 200, Height: 100},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// area = 2 m²; override subtotal = 15*2*5 + 75 = 225; rush ×1.5 = 337.5
		if q.Subtotal != 337.5 || q.TaxAmount != 16.88 || q.Total != 354.38 {
			t.Fatalf("unexpected totals: subtotal=%v tax=%v total=%v", q.Subtotal, q.TaxAmount, q.Total)
		}
	})

	t.Run("flat modifier amounts are reapplied verbatim", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{
			ProductType: "banners",
			Quantity:    5,
			Finish:      FinishGlossy,
			Dimensions:  &entities.Dimensions{Width: 100, Height: 100},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// override subtotal = 15*1*5 + 75 = 150; lamination amount (5*0.1) re-added as-is
		if q.Subtotal != 150.5 {
			t.Fatalf("expected subtotal 150.5, got %v", q.Subtotal)
		}
	})

	t.Run("banner without dimensions keeps unit pricing", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{ProductType: "banners", Quantity: 5})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// unit price 12 at the 5 break: 12*5 + 75 = 135
		if q.Subtotal != 135 {
			t.Fatalf("expected subtotal 135, got %v", q.Subtotal)
		}
	})

	t.Run("dimensions on unit-priced products are ignored", func(t *testing.T) {
		q, err := e.Calculate(QuoteRequest{
			ProductType: "flyers",
			Quantity:    100,
			Dimensions:  &entities.Dimensions{Width: 200, Height: 100},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Subtotal != 55 {
			t.Fatalf("expected subtotal 55, got %v", q.Subtotal)
		}
	})
}

func TestEstimator_Calculate_Validation(t *testing.T) {
	e := fixedEstimator(t)

	t.Run("unknown product type", func(t *testing.T) {
		_, err := e.Calculate(QuoteRequest{ProductType: "widgets", Quantity: 10})
		if !errors.Is(err, ErrInvalidProductType) {
			t.Fatalf("expected ErrInvalidProductType, got %v", err)
		}
	})

	t.Run("empty product type", func(t *testing.T) {
		_, err := e.Calculate(QuoteRequest{Quantity: 10})
		if !errors.Is(err, ErrInvalidProductType) {
			t.Fatalf("expected ErrInvalidProductType, got %v", err)
		}
	})

	t.Run("zero quantity", func(t *testing.T) {
		_, err := e.Calculate(QuoteRequest{ProductType: "flyers"})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: -5})
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})
}

func TestEstimator_Calculate_Stamps(t *testing.T) {
	e := fixedEstimator(t)
	q, err := e.Calculate(QuoteRequest{ProductType: "flyers", Quantity: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Currency != DefaultCurrency {
		t.Fatalf("expected currency %s, got %s", DefaultCurrency, q.Currency)
	}
	if q.TaxRate != TaxRate {
		t.Fatalf("expected tax rate %v, got %v", TaxRate, q.TaxRate)
	}
	if !q.ValidUntil.Equal(q.CreatedAt.Add(QuoteValidity)) {
		t.Fatalf("expected valid_until 30 days after created_at, got %v / %v", q.ValidUntil, q.CreatedAt)
	}
	if q.PaperType != PaperStandard || q.Finish != FinishNone || q.Sides != 1 {
		t.Fatalf("expected defaults echoed, got %+v", q)
	}
}

func TestEstimator_Calculate_Deterministic(t *testing.T) {
	e := fixedEstimator(t)
	req := QuoteRequest{ProductType: "brochures", Quantity: 250, PaperType: PaperPremium, Finish: FinishUV, Sides: 2, RushJob: true}
	a, err := e.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := e.Calculate(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Subtotal != b.Subtotal || a.TaxAmount != b.TaxAmount || a.Total != b.Total {
		t.Fatalf("calculation not deterministic: %+v vs %+v", a, b)
	}
	if got := round2(a.Subtotal + a.Subtotal*TaxRate); got != a.Total {
		t.Fatalf("tax identity violated: %v != %v", got, a.Total)
	}
}

func TestEstimator_CalculateBulk(t *testing.T) {
	e := fixedEstimator(t)

	t.Run("per-item isolation and ordering", func(t *testing.T) {
		out := e.CalculateBulk([]QuoteRequest{
			{ProductType: "business_cards", Quantity: 1000},
			{ProductType: "widgets", Quantity: 10},
			{ProductType: "flyers", Quantity: 100},
		})
		if len(out.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(out.Items))
		}
		if out.Items[0].Quote == nil || out.Items[2].Quote == nil {
			t.Fatalf("expected quotes in slots 0 and 2: %+v", out.Items)
		}
		if out.Items[1].Err == nil || !errors.Is(out.Items[1].Err, ErrInvalidProductType) {
			t.Fatalf("expected invalid product error in slot 1, got %v", out.Items[1].Err)
		}
		if out.Items[1].Item.ProductType != "widgets" {
			t.Fatalf("expected failing request echoed, got %+v", out.Items[1].Item)
		}
		// 152.25 + 57.75 from the two valid items
		if out.TotalAmount != 210 {
			t.Fatalf("expected total 210, got %v", out.TotalAmount)
		}
		if out.Currency != DefaultCurrency {
			t.Fatalf("expected currency %s, got %s", DefaultCurrency, out.Currency)
		}
	})

	t.Run("zero quantity item is captured inline", func(t *testing.T) {
		out := e.CalculateBulk([]QuoteRequest{{ProductType: "flyers"}})
		if !errors.Is(out.Items[0].Err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", out.Items[0].Err)
		}
		if out.TotalAmount != 0 {
			t.Fatalf("expected zero total, got %v", out.TotalAmount)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		out := e.CalculateBulk(nil)
		if len(out.Items) != 0 || out.TotalAmount != 0 {
			t.Fatalf("unexpected result: %+v", out)
		}
	})
}

func TestEstimator_Table(t *testing.T) {
	e := fixedEstimator(t)
	table := e.Table()
	entry, ok := table["banners"]
	if !ok {
		t.Fatalf("expected banners in table")
	}
	entry.QuantityBreaks[1] = 999
	if e.table["banners"].QuantityBreaks[1] == 999 {
		t.Fatalf("Table() must return a copy")
	}
}

func TestParseTable(t *testing.T) {
	t.Run("rejects empty document", func(t *testing.T) {
		if _, err := ParseTable([]byte("")); err == nil {
			t.Fatalf("expected error for empty table")
		}
	})

	t.Run("rejects missing base price", func(t *testing.T) {
		if _, err := ParseTable([]byte("stickers:\n  setup_fee: 5\n")); err == nil {
			t.Fatalf("expected error for zero base price")
		}
	})

	t.Run("default table is well formed", func(t *testing.T) {
		table := DefaultTable()
		for _, name := range []string{"business_cards", "brochures", "flyers", "banners"} {
			entry, ok := table[name]
			if !ok {
				t.Fatalf("missing product %s", name)
			}
			if len(entry.QuantityBreaks) == 0 {
				t.Fatalf("product %s has no quantity breaks", name)
			}
		}
	})
}
