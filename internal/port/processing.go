// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"

	"appliance-portcfg/internal/types"
)

// RowProcessor is the primary port for the per-row pipeline.
// Every call returns exactly one terminal Outcome; it never panics or
// returns an error for row-level problems.
type RowProcessor interface {
	// Process turns one row into one outcome
	Process(ctx context.Context, row types.Row) types.Outcome
}

// RowSource is a port for reading the input rows.
type RowSource interface {
	// ReadRows returns all data rows of the input in file order
	ReadRows(filename string) ([]types.Row, error)
}

// NetworkResolver is a port for the read-only network name directory.
type NetworkResolver interface {
	// Lookup returns the network id registered under name
	Lookup(name string) (string, bool)
}
