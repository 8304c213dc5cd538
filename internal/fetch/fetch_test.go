package fetch_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"faa-load/internal/fetch"
)

func TestDownload(t *testing.T) {
	payload := []byte("PK\x03\x04 not a real archive")
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write(payload)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "data", "ReleasableAircraft.zip")
	require.NoError(t, fetch.Download(srv.URL, dest))

	body, err := os.ReadFile(dest)
	require.NoError(t, err)
	require.Equal(t, payload, body)
	require.Contains(t, gotUA, "Mozilla", "registry host rejects non-browser agents")
}

func TestDownload_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	err := fetch.Download(srv.URL, filepath.Join(t.TempDir(), "x.zip"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "404")
}

func TestDownload_BadURL(t *testing.T) {
	err := fetch.Download("http://\x7f", filepath.Join(t.TempDir(), "x.zip"))
	require.Error(t, err)
}
