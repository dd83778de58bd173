package model

import "encoding/json"

// Context carries the tenant and restaurant metadata supplied by the caller
// with every message. It is immutable per request; unknown fields are kept
// verbatim in Extra.
type Context struct {
	TenantID       int
	RestaurantName string
	Address        string
	Extra          map[string]any
}

// UnmarshalJSON decodes the caller-supplied context object, defaulting the
// tenant to 1 and collecting unrecognised fields into Extra.
func (c *Context) UnmarshalJSON(b []byte) error {
	raw := map[string]any{}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	c.TenantID = 1
	if v, ok := raw["tenant_id"].(float64); ok && int(v) > 0 {
		c.TenantID = int(v)
	}
	delete(raw, "tenant_id")
	if v, ok := raw["restaurant_name"].(string); ok {
		c.RestaurantName = v
	}
	delete(raw, "restaurant_name")
	if v, ok := raw["address"].(string); ok {
		c.Address = v
	}
	delete(raw, "address")
	if len(raw) > 0 {
		c.Extra = raw
	}
	return nil
}

// Tool result statuses fed back to the model backend.
const (
	ResultSuccess     = "success"
	ResultEmpty       = "empty"
	ResultUnavailable = "unavailable"
	ResultFound       = "found"
	ResultNotFound    = "not_found"
	ResultError       = "error"
)

// ToolResult is the tagged outcome of a dispatched tool call. Exactly one
// shape is populated per call; Order, when set, is the raw order service
// payload passed through untouched.
type ToolResult struct {
	Status      string     `json:"status,omitempty"`
	Error       string     `json:"error,omitempty"`
	Message     string     `json:"message,omitempty"`
	Filter      FilterType `json:"filter,omitempty"`
	Items       []MenuItem `json:"items,omitempty"`
	ItemDetails *MenuItem  `json:"item_details,omitempty"`

	Order json.RawMessage `json:"-"`
}

// Payload serialises the result for the second model round-trip.
func (r ToolResult) Payload() (string, error) {
	if len(r.Order) > 0 {
		return string(r.Order), nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
