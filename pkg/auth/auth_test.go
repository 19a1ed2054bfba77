package auth

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtui/semt/pkg/errors"
)

// fakeJWT builds an unsigned token with the given exp claim.
func fakeJWT(t *testing.T, exp int64) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	claims, err := json.Marshal(map[string]any{"exp": exp, "sub": "tester"})
	require.NoError(t, err)
	payload := base64.RawURLEncoding.EncodeToString(claims)
	return header + "." + payload + ".signature"
}

func TestTokenSourceSignsIn(t *testing.T) {
	exp := time.Now().Add(2 * time.Hour).Unix()
	token := fakeJWT(t, exp)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signin", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var creds map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, "user", creds["username"])
		assert.Equal(t, "secret", creds["password"])

		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer srv.Close()

	source, err := NewTokenSource(srv.URL, Credentials{Username: "user", Password: "secret"}, nil)
	require.NoError(t, err)

	got, err := source.Token()
	require.NoError(t, err)
	assert.Equal(t, token, got.AccessToken)
	assert.Equal(t, time.Unix(exp, 0).Unix(), got.Expiry.Unix())
}

func TestTokenSourceCachesUntilExpiry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		token := fakeJWT(t, time.Now().Add(time.Hour).Unix())
		_ = json.NewEncoder(w).Encode(map[string]string{"token": token})
	}))
	defer srv.Close()

	source, err := NewTokenSource(srv.URL, Credentials{Username: "user", Password: "secret"}, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := source.Token()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestTokenSourceRejectedSignIn(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	source, err := NewTokenSource(srv.URL, Credentials{Username: "user", Password: "wrong"}, nil)
	require.NoError(t, err)

	_, err = source.Token()
	require.Error(t, err)

	var apiErr *errors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestNewTokenSourceRequiresCredentials(t *testing.T) {
	_, err := NewTokenSource("http://example.org", Credentials{}, nil)
	assert.ErrorIs(t, err, errors.ErrCredentialsRequired)
}

func TestTokenExpiryFallbacks(t *testing.T) {
	now := time.Date(2024, 5, 17, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, now.Add(fallbackTokenTTL), tokenExpiry("opaque-token", now))
	assert.Equal(t, now.Add(fallbackTokenTTL), tokenExpiry(fmt.Sprintf("a.%s.c", "!!!not-base64!!!"), now))

	exp := now.Add(30 * time.Minute).Unix()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"exp":%d}`, exp)))
	assert.Equal(t, time.Unix(exp, 0), tokenExpiry(header+"."+payload+".sig", now))
}
