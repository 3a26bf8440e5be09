package metrics

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGather(t *testing.T) {
	r := NewRegistry()
	r.FieldsChecked.Add(3)
	r.RecordsInserted.Add(6)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["reso_lookup_seed_fields_checked_total"])
	assert.True(t, names["reso_lookup_seed_records_inserted_total"])
	assert.True(t, names["reso_lookup_seed_last_success_timestamp_seconds"])

	assert.Equal(t, float64(3), testutil.ToFloat64(r.FieldsChecked))
}

func TestObserveRun(t *testing.T) {
	r := NewRegistry()
	r.ObserveRun(time.Now().Add(-2 * time.Second))
	assert.GreaterOrEqual(t, testutil.ToFloat64(r.DurationSec), float64(2))
}

func TestPush(t *testing.T) {
	var (
		method string
		path   string
		body   string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		method = req.Method
		path = req.URL.Path
		b, _ := io.ReadAll(req.Body)
		body = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewRegistry()
	r.RecordsInserted.Add(459)

	err := r.Push(context.Background(), srv.URL, "reso_lookup_seed", "reso")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.True(t, strings.HasSuffix(path, "/metrics/job/reso_lookup_seed/database/reso"), "path %s", path)
	assert.NotEmpty(t, body)
}

func TestPushFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewRegistry().Push(context.Background(), srv.URL, "reso_lookup_seed", "reso")
	assert.Error(t, err)
}
