package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/logging"
)

func TestGetJSONDecodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/dataset", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]string{"hello": "world"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	var out map[string]string
	require.NoError(t, c.GetJSON(context.Background(), "api/dataset", nil, &out))
	assert.Equal(t, "world", out["hello"])
}

func TestNonSuccessStatusBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	err := c.GetJSON(context.Background(), "api/dataset", nil, &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.IsServiceUnavailable(err))

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestRateLimitedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	err := c.GetJSON(context.Background(), "api/dataset", nil, &struct{}{})
	assert.True(t, errors.IsRateLimited(err))
}

func TestUndecodableBodyBecomesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	err := c.GetJSON(context.Background(), "api/dataset", nil, &struct{}{})
	assert.True(t, errors.IsServiceUnavailable(err))
}

func TestTokenAuthSetsBearerHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sesame", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "sesame"})
	c := New(srv.URL,
		WithLogger(&logging.Nop),
		WithAuthenticator(&TokenAuth{Source: source}))

	require.NoError(t, c.GetJSON(context.Background(), "api/dataset", nil, &struct{}{}))
}

func TestPostJSONSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "value", body["key"])
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.PostJSON(context.Background(), "api/extenders", map[string]string{"key": "value"}, &out))
	assert.True(t, out.OK)
}

func TestPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "cities", r.FormValue("name"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "cities.csv", header.Filename)

		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, WithLogger(&logging.Nop))

	err := c.PostMultipart(context.Background(), "api/dataset/ds_1/table/",
		map[string]string{"name": "cities"},
		[]MultipartField{{Name: "file", Filename: "cities.csv", Content: []byte("City\nParis\n")}},
		nil)
	require.NoError(t, err)
}
