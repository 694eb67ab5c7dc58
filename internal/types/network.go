// Package types defines common types used across the application.
package types

// Network is a managed network as returned by the organization listing.
type Network struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	OrganizationID string   `json:"organizationId"`
	ProductTypes   []string `json:"productTypes"`
	TimeZone       string   `json:"timeZone,omitempty"`
}

// PortResponse is the gateway's representation of an updated appliance port.
// Field semantics are owned by the dashboard, so the body is kept untyped.
type PortResponse map[string]interface{}

// Row is one parsed CSV line keyed by header name.
type Row struct {
	Line   int               // 1-based data line number, header excluded
	Fields map[string]string // column name -> raw cell value
}

// Get returns the value of a column and whether the column is present.
func (r Row) Get(column string) (string, bool) {
	v, ok := r.Fields[column]
	return v, ok
}
