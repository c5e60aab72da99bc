package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRouter_ServesMetrics(t *testing.T) {
	reg := SetupPrometheus()
	m := NewManager("blogdesk", "test_client", reg)
	m.CounterApiRequests.WithLabelValues("list", "200").Inc()
	m.CounterCacheHits.Add(3)

	server := httptest.NewServer(NewRouter(reg))
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `blogdesk_test_client_api_request{op="list",status="200"} 1`)
	assert.Contains(t, string(body), "blogdesk_test_client_query_cache_hits 3")
	assert.Contains(t, string(body), "go_goroutines")

	resp, err = server.Client().Post(server.URL+"/metrics", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestServe_EmptyAddrDisabled(t *testing.T) {
	s := Serve("", SetupPrometheus())
	assert.Nil(t, s)
	assert.NoError(t, s.Shutdown(context.Background()))
}
