package csvio

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/stephenongoma/finance-tracker/pkg/transaction"
)

type TransactionReader interface {
	GetAll(ctx context.Context) ([]transaction.Transaction, error)
}

type TransactionWriter interface {
	BulkAdd(ctx context.Context, txs []transaction.Transaction) ([]int64, error)
}

type ImportResultDTO struct {
	BatchId  string        `json:"batchId"`
	Imported int           `json:"imported"`
	Skipped  int           `json:"skipped"`
	Errors   []RowErrorDTO `json:"errors,omitempty"`
}

type RowErrorDTO struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type CsvHandler struct {
	reader     TransactionReader
	writer     TransactionWriter
	exporter   *CsvExporter
	normalizer *Normalizer
}

func NewCsvHandler(reader TransactionReader, writer TransactionWriter, exporter *CsvExporter, normalizer *Normalizer) *CsvHandler {
	return &CsvHandler{reader: reader, writer: writer, exporter: exporter, normalizer: normalizer}
}

func (handler *CsvHandler) Export(w http.ResponseWriter, r *http.Request) {
	log.Debug("Exporting transactions to CSV")

	transactions, err := handler.reader.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rendered, err := handler.exporter.Render(transactions)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="transactions.csv"`)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rendered)); err != nil {
		log.Errorf("failed to write csv response: %v", err)
	}
}

func (handler *CsvHandler) Import(w http.ResponseWriter, r *http.Request) {
	log.Debug("Importing transactions from CSV")
	w.Header().Set("Content-Type", "application/json")

	body, err := importBody(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	defer body.Close()

	rows, err := ParseCSV(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := handler.normalizer.Normalize(rows)
	if len(result.Accepted) > 0 {
		if _, err := handler.writer.BulkAdd(r.Context(), result.Accepted); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	dto := ImportResultDTO{
		BatchId:  uuid.NewString(),
		Imported: len(result.Accepted),
		Skipped:  result.Skipped,
	}
	for _, rowErr := range result.RowErrors {
		dto.Errors = append(dto.Errors, RowErrorDTO{Row: rowErr.Index, Reason: rowErr.Reason.Error()})
	}
	log.Infof("CSV import %s finished: %d imported, %d skipped", dto.BatchId, dto.Imported, dto.Skipped)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// importBody returns the CSV payload of an import request: the "file" part
// of a multipart form when present, otherwise the raw request body.
func importBody(r *http.Request) (io.ReadCloser, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, err
		}
		return file, nil
	}
	return r.Body, nil
}
