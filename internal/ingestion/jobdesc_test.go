package ingestion

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadJobDescription_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_description.txt")
	require.NoError(t, os.WriteFile(path, []byte("\n  Looking for a Python engineer  \n\n"), 0644))

	text, err := LoadJobDescription(path)

	require.NoError(t, err)
	assert.Equal(t, "Looking for a Python engineer", text)
}

func TestLoadJobDescription_NotFound(t *testing.T) {
	_, err := LoadJobDescription(filepath.Join(t.TempDir(), "missing.txt"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestFetchJobDescription_ExtractsVisibleText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><h1>Python Engineer</h1><p>ML experience required.</p><script>noise()</script></body></html>`))
	}))
	defer server.Close()

	text, err := FetchJobDescription(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Contains(t, text, "Python Engineer")
	assert.Contains(t, text, "ML experience required.")
	assert.NotContains(t, text, "noise()")
}

func TestFetchJobDescription_BadURL(t *testing.T) {
	_, err := FetchJobDescription(context.Background(), "not a url")

	require.Error(t, err)
}
