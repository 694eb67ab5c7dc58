// Package directory resolves network display names to network ids.
package directory

import (
	"context"
	"fmt"
	"sort"

	"appliance-portcfg/internal/pkg/logging"
	"appliance-portcfg/internal/port"
	"appliance-portcfg/internal/types"
)

// Directory is a read-only name to id mapping of appliance networks.
// It is built once and never refreshed, so networks renamed or created
// during a run are not seen by that run.
type Directory struct {
	ids map[string]string
}

// New builds a Directory from networks. On duplicate names the last entry wins.
func New(networks []types.Network) *Directory {
	logger := logging.WithComponent("directory")

	ids := make(map[string]string, len(networks))
	for _, network := range networks {
		if previous, exists := ids[network.Name]; exists && previous != network.ID {
			logging.WithNetwork(logger, network.Name).WithFields(map[string]interface{}{
				"replaced_id": previous,
				"id":          network.ID,
			}).Warn("Duplicate network name, keeping the last one listed")
		}
		ids[network.Name] = network.ID
	}
	return &Directory{ids: ids}
}

// Build lists the organization's appliance networks and builds the Directory.
// A listing failure yields no directory at all.
func Build(ctx context.Context, lister port.NetworkLister, orgID string) (*Directory, error) {
	networks, err := lister.ListApplianceNetworks(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appliance networks for organization %s: %w", orgID, err)
	}

	dir := New(networks)
	logging.WithComponent("directory").WithField("networks", dir.Len()).Info("Built network name to ID mapping")
	return dir, nil
}

// Lookup returns the network id for name.
func (d *Directory) Lookup(name string) (string, bool) {
	id, ok := d.ids[name]
	return id, ok
}

// Len returns the number of distinct names.
func (d *Directory) Len() int {
	return len(d.ids)
}

// Names returns the known network names in sorted order.
func (d *Directory) Names() []string {
	names := make([]string, 0, len(d.ids))
	for name := range d.ids {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
