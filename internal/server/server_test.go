package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/kgbridge/internal/config"
	"github.com/agenthands/kgbridge/internal/converter"
	"github.com/agenthands/kgbridge/internal/driver"
)

type mockDriver struct {
	rows      [][]map[string]interface{}
	queryErr  error
	verifyErr error
	calls     int
}

func (m *mockDriver) RunQuery(ctx context.Context, query string, params map[string]interface{}) ([]map[string]interface{}, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	call := m.calls
	m.calls++
	if call < len(m.rows) {
		return m.rows[call], nil
	}
	return []map[string]interface{}{}, nil
}

func (m *mockDriver) VerifyConnectivity(ctx context.Context) error { return m.verifyErr }

func (m *mockDriver) Close(ctx context.Context) error { return nil }

func newTestRouter(d driver.GraphDriver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewServer(d, config.FromEnv()).SetupRouter()
}

func TestConvertEndpoint(t *testing.T) {
	mock := &mockDriver{
		rows: [][]map[string]interface{}{
			{{
				"source_id":   "4:abc:0",
				"entity_name": "Alice",
				"labels":      []interface{}{"Person"},
				"props":       map[string]interface{}{"name": "Alice"},
			}},
			{},
		},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	newTestRouter(mock).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var kg converter.KnowledgeGraph
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &kg))
	require.Len(t, kg.Entities, 1)
	assert.Equal(t, "Alice", kg.Entities[0].EntityName)
	assert.Len(t, kg.Chunks, 1)

	// Wire field names are the downstream contract.
	assert.Contains(t, w.Body.String(), `"entity_name"`)
	assert.Contains(t, w.Body.String(), `"chunk_order_index"`)
}

func TestConvertEndpoint_StoreFailure(t *testing.T) {
	mock := &mockDriver{
		queryErr: fmt.Errorf("%w: connection reset", driver.ErrQueryExecution),
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/convert", nil)
	newTestRouter(mock).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "conversion failed")
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestRouter(&mockDriver{}).ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	newTestRouter(&mockDriver{verifyErr: driver.ErrConnectivity}).ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
