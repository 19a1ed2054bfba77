package semt

import (
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/semtui/semt/internal/transport"
	"github.com/semtui/semt/pkg/auth"
	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/logging"
)

// Client talks to one SemTUI backend deployment.
type Client struct {
	baseURL   string
	transport *transport.Client
	logger    *zerolog.Logger
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, errors.NewConfigError("baseURL", "backend base URL is required")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = logging.Default()
	}

	source, err := tokenSource(baseURL, &o)
	if err != nil {
		return nil, err
	}

	topts := []transport.Option{
		transport.WithLogger(logger),
	}
	if source != nil {
		topts = append(topts, transport.WithAuthenticator(&transport.TokenAuth{Source: source}))
	}
	if o.httpClient != nil {
		topts = append(topts, transport.WithHTTPClient(o.httpClient))
	}
	if o.rateRPS > 0 {
		topts = append(topts, transport.WithRateLimit(o.rateRPS, o.rateBurst))
	}

	return &Client{
		baseURL:   baseURL,
		transport: transport.New(baseURL, topts...),
		logger:    logger,
	}, nil
}

func tokenSource(baseURL string, o *options) (oauth2.TokenSource, error) {
	switch {
	case o.source != nil:
		return o.source, nil
	case o.token != "":
		return auth.StaticTokenSource(o.token), nil
	case o.creds.Valid():
		return auth.NewTokenSource(baseURL, o.creds, o.httpClient)
	default:
		return nil, nil
	}
}
