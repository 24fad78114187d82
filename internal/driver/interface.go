package driver

import "context"

// GraphDriver is the read surface the converter needs from a property-graph
// store: run a parameterized query and get every row back as a column-to-value
// map. Implementations buffer the full result set; there is no cursor.
type GraphDriver interface {
	RunQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}
