// Package processor implements the per-row port update pipeline.
package processor

import (
	"context"
	"errors"

	"appliance-portcfg/internal/port"
	"appliance-portcfg/internal/types"
)

// Columns names the routing columns of the input and the placeholder that
// marks a cell as not provided.
type Columns struct {
	NetworkName string
	PortID      string
	NotProvided string
}

// Processor turns one input row into one Outcome. It implements the RowProcessor port.
// It holds only read-only references and may be reused across rows.
type Processor struct {
	resolver port.NetworkResolver
	updater  port.PortUpdater
	columns  Columns
}

// Ensure Processor implements the RowProcessor port
var _ port.RowProcessor = (*Processor)(nil)

// NewProcessor creates a row processor over a network resolver and a port updater.
func NewProcessor(resolver port.NetworkResolver, updater port.PortUpdater, columns Columns) *Processor {
	return &Processor{
		resolver: resolver,
		updater:  updater,
		columns:  columns,
	}
}

// Process validates row, resolves its network and applies the remaining
// columns to the port. The updater is called at most once.
func (p *Processor) Process(ctx context.Context, row types.Row) types.Outcome {
	networkName, _ := row.Get(p.columns.NetworkName)
	portID, hasPortID := row.Get(p.columns.PortID)

	outcome := p.process(ctx, row)
	outcome.Line = row.Line
	outcome.NetworkName = networkName
	if hasPortID {
		outcome.PortID = portID
	}
	return outcome
}

func (p *Processor) process(ctx context.Context, row types.Row) types.Outcome {
	networkName, ok := row.Get(p.columns.NetworkName)
	if !ok || p.notProvided(networkName) {
		return types.Skipped(types.ReasonNetworkNotFound)
	}
	networkID, ok := p.resolver.Lookup(networkName)
	if !ok {
		return types.Skipped(types.ReasonNetworkNotFound)
	}

	portID, ok := row.Get(p.columns.PortID)
	if !ok || p.notProvided(portID) {
		return types.Skipped(types.ReasonPortIDMissing)
	}

	response, err := p.updater.UpdateAppliancePort(ctx, networkID, portID, p.payload(row))
	if err != nil {
		return classify(err)
	}
	return types.Succeeded(response)
}

// payload copies every column except the two routing columns.
func (p *Processor) payload(row types.Row) map[string]string {
	payload := make(map[string]string, len(row.Fields))
	for column, value := range row.Fields {
		if column == p.columns.NetworkName || column == p.columns.PortID {
			continue
		}
		payload[column] = value
	}
	return payload
}

func (p *Processor) notProvided(value string) bool {
	return value == "" || (p.columns.NotProvided != "" && value == p.columns.NotProvided)
}

// classify maps an updater error to a Failed outcome. Only structured API
// errors keep their own code.
func classify(err error) types.Outcome {
	var protocolErr *types.ProtocolError
	if errors.As(err, &protocolErr) {
		return types.Failed(protocolErr.Code, protocolErr.Message)
	}
	return types.Failed(types.GenericFailureCode, err.Error())
}
