package web_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okpulse/url-strip/internal/web"
)

func postStrip(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := web.New(zap.NewNop())
	req := httptest.NewRequest(http.MethodPost, "/api/strip", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestStripEndpoint(t *testing.T) {
	rec := postStrip(t, `{"url":"https://example.com/p?utm_source=mail&id=7"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		URL   string `json:"url"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://example.com/p?id=7", resp.URL)
	assert.Empty(t, resp.Error)
}

func TestStripEndpointRejectsMalformedURL(t *testing.T) {
	rec := postStrip(t, `{"url":"foo"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
}

func TestStripEndpointBadRequest(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, postStrip(t, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, postStrip(t, `not json`).Code)
}

func TestStripEndpointMethod(t *testing.T) {
	srv := web.New(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/strip", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestDomainsEndpoint(t *testing.T) {
	srv := web.New(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/api/domains", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Domains []string `json:"domains"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Domains, "www.reddit.com")
}

func TestHealthz(t *testing.T) {
	srv := web.New(zap.NewNop())
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
