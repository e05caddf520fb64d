package csvio

import (
	"bytes"
	"encoding/csv"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

// exportHeader is the canonical column order of the CSV interchange format.
var exportHeader = []string{"id", "date", "category", "amount", "type"}

type CsvExporter struct {
}

func NewCsvExporter() *CsvExporter {
	return &CsvExporter{}
}

// Render writes the transactions in the canonical CSV shape: a header row
// followed by one row per transaction, dates as "YYYY-MM-DD HH:MM:SS" and
// amounts as plain decimal strings.
func (e *CsvExporter) Render(txs []transaction.Transaction) (string, error) {
	data := make([][]string, 0, len(txs)+1)
	data = append(data, exportHeader)
	for _, tx := range txs {
		data = append(data, []string{
			strconv.FormatInt(tx.ID, 10),
			tx.OccurredAt.Format(transaction.TimeFormat),
			tx.Category,
			tx.Amount.String(),
			string(tx.Kind),
		})
	}

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}
