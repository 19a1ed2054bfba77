package semt

import (
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/semtui/semt/pkg/auth"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	creds      auth.Credentials
	token      string
	source     oauth2.TokenSource
	httpClient *http.Client
	logger     *zerolog.Logger
	rateRPS    float64
	rateBurst  int
}

// WithCredentials signs in with a username and password. The client obtains
// a bearer token on first use and refreshes it when it expires.
func WithCredentials(username, password string) Option {
	return func(o *options) {
		o.creds = auth.Credentials{Username: username, Password: password}
	}
}

// WithToken uses a pre-obtained bearer token as-is.
func WithToken(token string) Option {
	return func(o *options) { o.token = token }
}

// WithTokenSource uses a custom token source, taking precedence over
// WithCredentials and WithToken.
func WithTokenSource(source oauth2.TokenSource) Option {
	return func(o *options) { o.source = source }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) { o.httpClient = hc }
}

// WithLogger sets the logger operations are traced through.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRateLimit caps backend requests at rps per second with the given
// burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateRPS = rps
		o.rateBurst = burst
	}
}
