package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetadata_TitleAndDescription(t *testing.T) {
	html := `<html><head>
		<title>Kubernetes Fundamentals</title>
		<meta name="description" content="An introduction to container orchestration.">
	</head><body></body></html>`

	meta, err := ExtractMetadata(html)
	require.NoError(t, err)
	assert.Equal(t, "Kubernetes Fundamentals", meta.Title)
	assert.Equal(t, "An introduction to container orchestration.", meta.Description)
}

func TestExtractMetadata_OpenGraphWins(t *testing.T) {
	html := `<html><head>
		<title>Plain Title</title>
		<meta property="og:title" content="OG Title">
		<meta name="description" content="Plain description">
		<meta property="og:description" content="OG description">
	</head><body></body></html>`

	meta, err := ExtractMetadata(html)
	require.NoError(t, err)
	assert.Equal(t, "OG Title", meta.Title)
	assert.Equal(t, "OG description", meta.Description)
}

func TestExtractMetadata_EmptyDocument(t *testing.T) {
	meta, err := ExtractMetadata("<html><head></head><body>just text</body></html>")
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
}

func TestFetchMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(`<html><head><title>Served Page</title></head></html>`))
	}))
	defer srv.Close()

	meta, err := FetchMetadata(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "Served Page", meta.Title)
	assert.Equal(t, srv.URL, meta.URL)
}

func TestFetchMetadata_InvalidURL(t *testing.T) {
	_, err := FetchMetadata(context.Background(), "not-a-url")
	require.Error(t, err)

	var ingestErr *Error
	assert.ErrorAs(t, err, &ingestErr)
}

func TestFetchMetadata_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := FetchMetadata(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}
