package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/stephenongoma/finance-tracker/internal/utils"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// Row is one raw record of an import, before validation.
type Row struct {
	Type     string
	Category string
	Amount   string
	Date     string
}

// RowError records why a row was skipped. Index is 1-based, counted after the
// header row if one was present.
type RowError struct {
	Index  int
	Reason error
}

// ImportResult is the outcome of normalizing a batch. Skipped rows never
// abort the batch; the caller decides what to do with Accepted.
type ImportResult struct {
	Accepted  []transaction.Transaction
	Skipped   int
	RowErrors []RowError
}

// Normalizer validates raw rows into ledger-ready transactions. It never
// writes to storage itself.
type Normalizer struct {
	clock utils.Clock
}

func NewNormalizer(clock utils.Clock) *Normalizer {
	return &Normalizer{clock: clock}
}

// Normalize applies the per-row accept/reject policy. An unparseable or
// missing date is not a rejection: the row is accepted with the current
// processing time instead.
func (n *Normalizer) Normalize(rows []Row) ImportResult {
	result := ImportResult{}
	for i, row := range rows {
		index := i + 1

		kind := transaction.Kind(strings.ToLower(strings.TrimSpace(row.Type)))
		if !kind.Valid() {
			result.skip(index, transaction.ErrInvalidKind)
			continue
		}

		category := strings.TrimSpace(row.Category)
		if category == "" {
			result.skip(index, transaction.ErrMissingCategory)
			continue
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row.Amount))
		if err != nil || amount.Cmp(decimal.Zero) <= 0 {
			result.skip(index, transaction.ErrInvalidAmount)
			continue
		}

		result.Accepted = append(result.Accepted, transaction.Transaction{
			Kind:       kind,
			Category:   category,
			Amount:     amount,
			OccurredAt: n.parseDate(row.Date),
		})
	}
	return result
}

func (n *Normalizer) parseDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return n.clock.Now()
	}
	if t, err := time.Parse(transaction.TimeFormat, raw); err == nil {
		return t
	}
	if t, err := time.Parse(transaction.DateFormat, raw); err == nil {
		return t
	}
	log.Debugf("falling back to current time for unparseable date %q", raw)
	return n.clock.Now()
}

func (r *ImportResult) skip(index int, reason error) {
	r.Skipped++
	r.RowErrors = append(r.RowErrors, RowError{Index: index, Reason: reason})
}

// ParseCSV reads raw CSV records into Rows. A leading header row is detected
// and dropped. Without a header, five columns are read in the canonical
// export order (id, date, category, amount, type; the id is ignored), fewer
// columns as (type, category, amount, optional date).
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("could not read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	columns := map[string]int{}
	if isHeader(records[0]) {
		for i, name := range records[0] {
			columns[strings.ToLower(strings.TrimSpace(name))] = i
		}
		records = records[1:]
	}

	rows := make([]Row, 0, len(records))
	for _, record := range records {
		if len(columns) > 0 {
			rows = append(rows, Row{
				Type:     cell(record, columns, "type"),
				Category: cell(record, columns, "category"),
				Amount:   cell(record, columns, "amount"),
				Date:     cell(record, columns, "date"),
			})
			continue
		}
		switch {
		case len(record) >= 5:
			rows = append(rows, Row{Type: record[4], Category: record[2], Amount: record[3], Date: record[1]})
		case len(record) == 4:
			rows = append(rows, Row{Type: record[0], Category: record[1], Amount: record[2], Date: record[3]})
		case len(record) == 3:
			rows = append(rows, Row{Type: record[0], Category: record[1], Amount: record[2]})
		default:
			// Short rows carry no usable fields; let the normalizer count the skip.
			rows = append(rows, Row{})
		}
	}
	return rows, nil
}

func isHeader(record []string) bool {
	hasType := false
	hasAmount := false
	for _, name := range record {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "type":
			hasType = true
		case "amount":
			hasAmount = true
		}
	}
	return hasType && hasAmount
}

func cell(record []string, columns map[string]int, name string) string {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return ""
	}
	return record[idx]
}
