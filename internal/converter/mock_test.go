package converter

import (
	"context"
)

// MockDriver replays canned result sets in call order so tests can script
// the node query and the relationship query independently.
type MockDriver struct {
	QueriesExecuted []string
	ResultQueue     [][]map[string]interface{}
	ErrQueue        []error

	calls int
}

func (m *MockDriver) RunQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	m.QueriesExecuted = append(m.QueriesExecuted, query)
	call := m.calls
	m.calls++

	if call < len(m.ErrQueue) && m.ErrQueue[call] != nil {
		return nil, m.ErrQueue[call]
	}
	if call < len(m.ResultQueue) {
		return m.ResultQueue[call], nil
	}
	return []map[string]interface{}{}, nil
}

func (m *MockDriver) VerifyConnectivity(ctx context.Context) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}
