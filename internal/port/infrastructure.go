// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"io"

	"appliance-portcfg/internal/types"
)

// NetworkLister is a port for the organization network listing.
// Implementations must exhaust pagination before returning.
type NetworkLister interface {
	// ListApplianceNetworks returns every appliance-capable network of the organization
	ListApplianceNetworks(ctx context.Context, orgID string) ([]types.Network, error)
}

// PortUpdater is a port for the appliance port update operation.
// Structured API failures are reported as *types.ProtocolError, everything
// else as *types.GatewayError.
type PortUpdater interface {
	// UpdateAppliancePort applies payload to one port of one network
	UpdateAppliancePort(ctx context.Context, networkID, portID string, payload map[string]string) (types.PortResponse, error)
}

// DashboardClient combines the two dashboard operations used by the tool.
type DashboardClient interface {
	NetworkLister
	PortUpdater
}

// FileManager is a port for file system operations.
// This interface abstracts file access for the input reader.
type FileManager interface {
	// Open opens a file for reading
	Open(filename string) (io.ReadCloser, error)

	// FileExists checks if a file exists
	FileExists(filename string) bool
}
