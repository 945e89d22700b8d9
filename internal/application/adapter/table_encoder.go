// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"io"

	"github.com/finance-pal/backend/internal/domain/valueobject"
)

// TableEncoder writes a table in a downloadable file format.
type TableEncoder interface {
	// Encode writes the table to w.
	Encode(w io.Writer, table valueobject.Table) error

	// ContentType returns the MIME type of the encoded output.
	ContentType() string

	// Extension returns the file extension without a dot.
	Extension() string
}
