package controller_test

import (
	"correcthorse/pkg/controller"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func servePprof(t *testing.T, prefix, path string) *http.Response {
	t.Helper()

	mux := controller.PprofMux(prefix)
	req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	return rec.Result()
}

func TestPprofMux_Index(t *testing.T) {
	res := servePprof(t, "/debug/pprof/", "/debug/pprof/")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_Cmdline(t *testing.T) {
	res := servePprof(t, "/debug/pprof", "/debug/pprof/cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_NamedProfile(t *testing.T) {
	res := servePprof(t, "/debug/pprof/", "/debug/pprof/goroutine?debug=1")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	res := servePprof(t, "/debug/pprof/", "/cmdline")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
