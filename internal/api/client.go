// Package api exposes one strongly-typed operation per remote APR-CV
// endpoint, translating method calls into HTTP requests and responses into
// typed results or structured errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/RandomSci/CapstoneProject/internal/transport"
	"github.com/RandomSci/CapstoneProject/pkg/config"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
	"github.com/RandomSci/CapstoneProject/pkg/monitoring"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// Client is the typed APR-CV API client. It is explicitly constructed with
// its transport and session dependencies so tests can substitute fakes; no
// package-level singleton exists.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	uploads  *http.Client
	jar      *transport.SessionJar
	log      *logger.Logger
	tracer   *monitoring.Tracer
	validate *validator.Validate

	largeFileThreshold int64
	chunkSize          int
	progressInterval   time.Duration
}

// New creates an API client from configuration. The same jar feeds both the
// default transport and the extended-timeout upload transport, so a
// credential captured on either is visible to both.
func New(cfg *config.Config, jar *transport.SessionJar, log *logger.Logger) (*Client, error) {
	base, err := url.Parse(cfg.API.BaseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.API.BaseURL, err)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	return &Client{
		baseURL:            base,
		http:               transport.NewClient(cfg, jar),
		uploads:            transport.NewLargeUploadClient(cfg, jar),
		jar:                jar,
		log:                log,
		tracer:             monitoring.NewTracer(),
		validate:           validator.New(),
		largeFileThreshold: cfg.Upload.LargeFileThreshold,
		chunkSize:          cfg.Upload.ChunkSize,
		progressInterval:   cfg.Upload.ProgressIntervalDuration(),
	}, nil
}

// Host returns the remote host this client talks to
func (c *Client) Host() string {
	return c.baseURL.Host
}

// Jar returns the session jar shared by the client's transports
func (c *Client) Jar() *transport.SessionJar {
	return c.jar
}

// FullMediaURL resolves a server-relative media path against the base URL.
// Absolute URLs pass through untouched.
func (c *Client) FullMediaURL(relative string) string {
	if strings.HasPrefix(relative, "http") {
		return relative
	}
	base := strings.TrimSuffix(c.baseURL.String(), "/")
	if !strings.HasPrefix(relative, "/") {
		relative = "/" + relative
	}
	return base + relative
}

// endpoint resolves a relative path (plus optional query values) against
// the base URL
func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(path, "/")
	if query != nil {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// do executes one JSON API call: body (when non-nil) is marshalled, non-2xx
// responses become structured errors, and the response body is decoded into
// out (when non-nil).
func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return types.NewSerializationError("failed to encode request body", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path, query), reqBody)
	if err != nil {
		return types.NewConnectivityError("failed to build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, operation, out)
}

// send executes a prepared request against the default transport
func (c *Client) send(req *http.Request, operation string, out interface{}) error {
	return c.sendWith(c.http, req, operation, out)
}

func (c *Client) sendWith(client *http.Client, req *http.Request, operation string, out interface{}) error {
	ctx, span := c.tracer.StartCallSpan(req.Context(), operation, req.Method, req.URL.Path)
	req = req.WithContext(ctx)

	start := time.Now()
	resp, err := client.Do(req)
	elapsed := time.Since(start).Milliseconds()

	if err != nil {
		c.log.HTTPRequest(req.Method, req.URL.Path, 0, elapsed, err)
		monitoring.EndCallSpan(span, 0, err)
		if req.Context().Err() != nil {
			return types.NewConnectivityError("request cancelled", req.Context().Err())
		}
		return types.NewConnectivityError("connection error", err)
	}
	defer resp.Body.Close()

	c.log.HTTPRequest(req.Method, req.URL.Path, resp.StatusCode, elapsed, nil)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeError(resp)
		monitoring.EndCallSpan(span, resp.StatusCode, apiErr)
		return apiErr
	}
	monitoring.EndCallSpan(span, resp.StatusCode, nil)

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.NewConnectivityError("failed to read response body", err)
	}
	if len(bytes.TrimSpace(data)) == 0 || string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		c.log.WithComponent("api").WithField("operation", operation).WithError(err).
			Warn("Response body did not match expected shape")
		return types.NewSerializationError("unexpected response shape", err)
	}
	return nil
}

// decodeError turns a non-2xx response into a structured error carrying the
// HTTP status and a best-effort parsed detail message
func decodeError(resp *http.Response) *types.ClientError {
	detail := fmt.Sprintf("request failed: %d", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err == nil && len(data) > 0 {
		var body types.ErrorResponse
		if jsonErr := json.Unmarshal(data, &body); jsonErr == nil && body.Detail != "" {
			detail = body.Detail
		}
	}

	return types.NewAPIError(resp.StatusCode, detail)
}

// statusOf extracts the HTTP status carried by a structured client error,
// zero for errors with no wire status
func statusOf(err error) int {
	var clientErr *types.ClientError
	if errors.As(err, &clientErr) {
		return clientErr.StatusCode
	}
	return 0
}

// validateRequest applies client-side validation before the wire call
func (c *Client) validateRequest(req interface{}) error {
	if err := c.validate.Struct(req); err != nil {
		return types.NewValidationError(0, err.Error())
	}
	return nil
}
