package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"quotesmith/internal/domain/entities"
)

func TestWriteQuoteCSV(t *testing.T) {
	q := entities.Quote{
		ID:           "q-1",
		JobType:      "Bathroom Remodel",
		Industry:     "construction",
		Region:       entities.RegionNortheast,
		Season:       entities.SeasonSpring,
		LaborCost:    2000,
		MaterialCost: 800,
		Subtotal:     2800,
		ProfitMargin: 0.32,
		Total:        4118,
		Deposit:      entities.DepositPolicy{Required: true, Percent: 25, Amount: 1029.5, BalanceDue: 3088.5},
		Tiers: []entities.TierOption{
			{Name: "Basic", Price: 3800, Profit: 1000, ProfitMargin: 0.272},
			{Name: "Standard", Price: 4118, Profit: 1318, ProfitMargin: 0.32, Recommended: true},
			{Name: "Premium", Price: 4667, Profit: 1867, ProfitMargin: 0.40},
		},
		Status:    entities.QuoteStatusDraft,
		CreatedAt: time.Date(2025, time.March, 1, 10, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	if err := WriteQuoteCSV(&buf, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("expected header + summary + 3 tier rows, got %d rows", len(rows))
	}

	summary := rows[1]
	if summary[0] != "quote" || summary[1] != "q-1" {
		t.Fatalf("unexpected summary row: %v", summary)
	}
	if summary[4] != "Northeast" || summary[5] != "spring" {
		t.Fatalf("unexpected region/season: %v", summary)
	}
	if summary[10] != "4118.00" || summary[11] != "true" || summary[12] != "1029.50" {
		t.Fatalf("unexpected money columns: %v", summary)
	}
	if summary[15] != "2025-03-01T10:00:00Z" {
		t.Fatalf("unexpected created_at: %v", summary[15])
	}

	standard := rows[3]
	if standard[0] != "tier" || standard[2] != "Standard" {
		t.Fatalf("unexpected tier row: %v", standard)
	}
	if standard[10] != "4118.00" || standard[14] != "recommended=true" {
		t.Fatalf("unexpected tier columns: %v", standard)
	}
}

func TestWriteQuoteCSV_NoTiers(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteQuoteCSV(&buf, entities.Quote{ID: "q-2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + summary, got %d rows", len(rows))
	}
}
