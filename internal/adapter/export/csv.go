package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"quotesmith/internal/domain/entities"
)

// WriteQuoteCSV renders one quote as a flat CSV document: a header row, one
// summary row, then one row per pricing tier. Spreadsheet-friendly export for
// providers who keep their books outside the app.
func WriteQuoteCSV(w io.Writer, q entities.Quote) error {
	cw := csv.NewWriter(w)

	header := []string{
		"record", "quote_id", "job_type", "industry", "region", "season",
		"labor_cost", "material_cost", "subtotal", "profit_margin", "total",
		"deposit_required", "deposit_amount", "balance_due", "status", "created_at",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	summary := []string{
		"quote",
		q.ID,
		q.JobType,
		q.Industry,
		string(q.Region),
		string(q.Season),
		money(q.LaborCost),
		money(q.MaterialCost),
		money(q.Subtotal),
		fmt.Sprintf("%.3f", q.ProfitMargin),
		money(q.Total),
		fmt.Sprintf("%t", q.Deposit.Required),
		money(q.Deposit.Amount),
		money(q.Deposit.BalanceDue),
		string(q.Status),
		q.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := cw.Write(summary); err != nil {
		return err
	}

	for _, tier := range q.Tiers {
		row := []string{
			"tier",
			q.ID,
			tier.Name,
			q.Industry,
			"", "",
			"", "",
			money(tier.Profit),
			fmt.Sprintf("%.3f", tier.ProfitMargin),
			money(tier.Price),
			"", "", "",
			fmt.Sprintf("recommended=%t", tier.Recommended),
			"",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
