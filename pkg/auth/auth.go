// Package auth obtains bearer tokens from the backend's sign-in endpoint.
// It exposes the token as an oauth2.TokenSource so transport code can stay
// agnostic about where credentials come from.
package auth

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/errors"
)

// fallbackTokenTTL applies when a token carries no usable expiry claim.
const fallbackTokenTTL = time.Hour

// Credentials are the backend sign-in credentials.
type Credentials struct {
	Username string
	Password string
}

// Valid reports whether both fields are set.
func (c Credentials) Valid() bool {
	return c.Username != "" && c.Password != ""
}

// credentialsSource signs in on demand. Callers get it wrapped in
// oauth2.ReuseTokenSource, which caches the token until shortly before the
// expiry parsed from its claims.
type credentialsSource struct {
	baseURL string
	creds   Credentials
	client  *http.Client
}

// NewTokenSource returns a caching token source that signs in to the backend
// with the given credentials and refreshes the token when it expires.
func NewTokenSource(baseURL string, creds Credentials, client *http.Client) (oauth2.TokenSource, error) {
	if !creds.Valid() {
		return nil, errors.ErrCredentialsRequired
	}
	if client == nil {
		client = &http.Client{Timeout: constants.DefaultHTTPTimeout}
	}
	src := &credentialsSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		client:  client,
	}
	return oauth2.ReuseTokenSource(nil, src), nil
}

// StaticTokenSource wraps an already-obtained token that never expires from
// the client's point of view.
func StaticTokenSource(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}

// Token implements oauth2.TokenSource by signing in.
func (s *credentialsSource) Token() (*oauth2.Token, error) {
	body, err := json.Marshal(map[string]string{
		"username": s.creds.Username,
		"password": s.creds.Password,
	})
	if err != nil {
		return nil, err
	}

	url := s.baseURL + "/" + constants.SignInPath
	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Content-Type", "application/json;charset=UTF-8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &errors.APIError{Endpoint: constants.SignInPath, Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &errors.APIError{
			Endpoint:   constants.SignInPath,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("sign-in rejected: %s", strings.TrimSpace(string(payload))),
			Err:        errors.ErrSignInFailed,
		}
	}

	var signin struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&signin); err != nil {
		return nil, &errors.APIError{Endpoint: constants.SignInPath, Message: "undecodable sign-in response", Err: err}
	}
	if signin.Token == "" {
		return nil, &errors.APIError{Endpoint: constants.SignInPath, Message: "sign-in response carries no token", Err: errors.ErrSignInFailed}
	}

	return &oauth2.Token{
		AccessToken: signin.Token,
		TokenType:   "Bearer",
		Expiry:      tokenExpiry(signin.Token, time.Now()),
	}, nil
}

// tokenExpiry reads the exp claim from a JWT without verifying the
// signature. The backend signs its own tokens; the client only needs to know
// when to refresh.
func tokenExpiry(token string, now time.Time) time.Time {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return now.Add(fallbackTokenTTL)
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return now.Add(fallbackTokenTTL)
	}
	var claims struct {
		Exp float64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return now.Add(fallbackTokenTTL)
	}
	return time.Unix(int64(claims.Exp), 0)
}
