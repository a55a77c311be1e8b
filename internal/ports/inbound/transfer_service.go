package inbound

import (
	"context"
	"io"
)

// TransferService moves recipes in and out of the system as CSV.
type TransferService interface {
	ImportCSV(ctx context.Context, r io.Reader) (*ImportResult, error)
	ExportCSV(ctx context.Context, w io.Writer) error
	Template() string
}

// ImportResult reports how an import went, row by row.
type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
