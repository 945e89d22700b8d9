// Package export encodes tables into downloadable file formats.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// CSVEncoder writes tables as RFC 4180 CSV.
type CSVEncoder struct{}

// NewCSVEncoder creates a new CSV encoder.
func NewCSVEncoder() *CSVEncoder {
	return &CSVEncoder{}
}

// Encode writes the header followed by every row.
func (e *CSVEncoder) Encode(w io.Writer, table valueobject.Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(table.Header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	if err := writer.WriteAll(table.Rows); err != nil {
		return fmt.Errorf("failed to write csv rows: %w", err)
	}
	return nil
}

// ContentType returns the MIME type of CSV output.
func (e *CSVEncoder) ContentType() string {
	return "text/csv; charset=utf-8"
}

// Extension returns "csv".
func (e *CSVEncoder) Extension() string {
	return "csv"
}
