package csvio

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTransactions() []transaction.Transaction {
	return []transaction.Transaction{
		{
			ID:         1,
			Kind:       transaction.KindIncome,
			Category:   "Salary",
			Amount:     decimal.RequireFromString("5000"),
			OccurredAt: time.Date(2024, time.January, 1, 8, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			Kind:       transaction.KindExpense,
			Category:   "Food, drinks",
			Amount:     decimal.RequireFromString("123.45"),
			OccurredAt: time.Date(2024, time.January, 2, 19, 30, 15, 0, time.UTC),
		},
	}
}

func TestCsvExporter_Render(t *testing.T) {
	exporter := NewCsvExporter()

	rendered, err := exporter.Render(sampleTransactions())

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(rendered, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,date,category,amount,type", lines[0])
	assert.Equal(t, "1,2024-01-01 08:00:00,Salary,5000,income", lines[1])
	// a category containing a comma is quoted by the csv writer
	assert.Equal(t, `2,2024-01-02 19:30:15,"Food, drinks",123.45,expense`, lines[2])
}

func TestCsvExporter_Render_empty(t *testing.T) {
	exporter := NewCsvExporter()

	rendered, err := exporter.Render(nil)

	require.NoError(t, err)
	assert.Equal(t, "id,date,category,amount,type\n", rendered)
}

func TestRoundTrip(t *testing.T) {
	exporter := NewCsvExporter()
	normalizer := NewNormalizer(clock)
	original := sampleTransactions()

	// when: export and re-import without edits
	rendered, err := exporter.Render(original)
	require.NoError(t, err)
	rows, err := ParseCSV(strings.NewReader(rendered))
	require.NoError(t, err)
	result := normalizer.Normalize(rows)

	// then: the (type, category, amount) triples survive, timestamps included
	require.Len(t, result.Accepted, len(original))
	assert.Equal(t, 0, result.Skipped)
	for i, got := range result.Accepted {
		assert.Equal(t, original[i].Kind, got.Kind)
		assert.Equal(t, original[i].Category, got.Category)
		assert.True(t, got.Amount.Equal(original[i].Amount))
		assert.Equal(t, original[i].OccurredAt, got.OccurredAt)
	}
}
