// Package bittrex is a client for the Bittrex v1.1 HTTP API.
package bittrex

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trex/pkg/retrier"
)

const (
	Version        = "v1.1"
	DefaultBaseURL = "https://bittrex.com/api/" + Version + "/"

	defaultTimeout = 30 * time.Second
)

// Client talks to the exchange. It is safe for concurrent use.
type Client struct {
	baseURL      string
	httpClient   *http.Client
	signer       *Signer
	logger       *zap.Logger
	retryOptions []retrier.Option
	retrier      *retrier.Retrier
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL overrides the API root. It must end with a slash.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client used for all calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCredentials enables private endpoints.
func WithCredentials(apiKey, apiSecret string) Option {
	return func(c *Client) {
		c.signer = NewSigner(apiKey, apiSecret)
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRetryOptions tunes the transport retry policy. Only transport failures are retried.
func WithRetryOptions(opts ...retrier.Option) Option {
	return func(c *Client) {
		c.retryOptions = append(c.retryOptions, opts...)
	}
}

// NewClient creates a client. Without credentials only public endpoints work.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	retryOpts := append([]retrier.Option{}, c.retryOptions...)
	retryOpts = append(retryOpts,
		retrier.WithRetryIf(isTransport),
		retrier.WithNotify(func(attempt int, err error, wait time.Duration) {
			c.logger.Warn("retrying bittrex request",
				zap.Int("attempt", attempt),
				zap.Duration("wait", wait),
				zap.Error(err))
		}),
	)
	c.retrier = retrier.New(retryOpts...)

	return c
}

// HasCredentials reports whether private endpoints can be called.
func (c *Client) HasCredentials() bool {
	return c.signer != nil && c.signer.apiKey != "" && len(c.signer.secret) > 0
}

// Request calls path relative to the base URL and returns the unwrapped result.
// Private requests are re-signed on every attempt.
func (c *Client) Request(ctx context.Context, method, path string, params Params, requiresAuth bool) (json.RawMessage, error) {
	uri := c.baseURL + path

	body, err := retrier.DoWithData(c.retrier, ctx, func(ctx context.Context) ([]byte, error) {
		desc, err := buildRequest(c.signer, method, uri, params, requiresAuth)
		if err != nil {
			return nil, err
		}

		return c.send(ctx, desc, path)
	})
	if err != nil {
		return nil, err
	}

	return unwrap(body)
}

func (c *Client) send(ctx context.Context, desc *requestDescriptor, path string) ([]byte, error) {
	req, err := desc.httpRequest(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: errors.Wrap(err, "read response")}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("bittrex request failed",
			zap.String("method", desc.method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	c.logger.Debug("bittrex request succeeded",
		zap.String("method", desc.method),
		zap.String("path", path),
		zap.Bool("signed", desc.signature != ""),
		zap.Duration("took", time.Since(start)))

	return body, nil
}

// get performs a GET and decodes the result into out.
func (c *Client) get(ctx context.Context, path string, params Params, requiresAuth bool, out any) error {
	raw, err := c.Request(ctx, http.MethodGet, path, params, requiresAuth)
	if err != nil {
		return errors.Wrap(err, path)
	}
	if out == nil || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "decode %s result: %v", path, err)
	}

	return nil
}

// getObject is get for endpoints whose result must not be null.
func (c *Client) getObject(ctx context.Context, path string, params Params, requiresAuth bool, out any) error {
	raw, err := c.Request(ctx, http.MethodGet, path, params, requiresAuth)
	if err != nil {
		return errors.Wrap(err, path)
	}
	if isNull(raw) {
		return errors.Wrap(ErrNoResult, path)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(ErrMalformedResponse, "decode %s result: %v", path, err)
	}

	return nil
}
