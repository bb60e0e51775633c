package fwmetrics

import (
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.FolderCreated("range", "/data/2020")
	m.FolderCreated("range", "/data/2021")
	m.FolderFailed("list", "/data/x", errors.New("boom"))
	m.WorkflowStarted("periodic")

	require.Equal(t, 2.0, testutil.ToFloat64(m.created.WithLabelValues("range")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.failed.WithLabelValues("list")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.workflowsStarted.WithLabelValues("periodic")))

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `fw_folders_created_total{operation="range"} 2`)
}
