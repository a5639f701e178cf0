package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trade-journal/internal/derive"
	"trade-journal/internal/models"
)

func TestReportMarkdown(t *testing.T) {
	j := sampleJournal()
	stats := derive.Stats(j)
	doc := ReportMarkdown(j, stats, time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, doc, "# Trading Journal Report")
	assert.Contains(t, doc, "Generated on 2026-02-15")
	assert.Contains(t, doc, "## Summary")
	assert.Contains(t, doc, "## Weekly Breakdown")
	assert.Contains(t, doc, "## Trades")

	// Stats come from the snapshot, not recomputed here.
	assert.Contains(t, doc, "Win Rate")
	assert.Contains(t, doc, "100.00%")
	assert.Contains(t, doc, "+2.00%")

	// Both weeks appear, including the empty one.
	assert.Contains(t, doc, "Week 1")
	assert.Contains(t, doc, "Week 2")
	assert.Contains(t, doc, "No trades recorded.")

	// Pending trades list with a dash instead of a gain.
	assert.Contains(t, doc, "XAUUSD")
}

func TestReportMarkdownCumulative(t *testing.T) {
	j := models.TradeJournal{
		Weeks: []models.Week{
			{ID: "w1", Name: "Week 1", PercentGain: 2},
			{ID: "w2", Name: "Week 2", PercentGain: -0.5},
		},
		TotalPercentGain: 1.5,
	}
	doc := ReportMarkdown(j, derive.Stats(j), time.Now())

	// Cumulative column carries the running total.
	assert.Contains(t, doc, "+1.50%")
	assert.Contains(t, doc, "-0.50%")
}

func TestReportMarkdownEmptyJournal(t *testing.T) {
	doc := ReportMarkdown(models.TradeJournal{}, models.DashboardStats{}, time.Now())

	assert.Contains(t, doc, "# Trading Journal Report")
	assert.Contains(t, doc, "Total Trades")
	// No week sections, but the document structure is intact.
	assert.Equal(t, 1, strings.Count(doc, "# Trading Journal Report"))
}
