/*
Copyright 2026 the PetFriends QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package client is a thin HTTP client for the PetFriends API.
//
// Every operation issues exactly one request and hands back whatever the
// service answered, see Result.  There are no retries and no response
// validation, the callers are tests and they want to see the raw outcome.
package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

const (
	// DefaultTimeout bounds a single request.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the client to the service.
	DefaultUserAgent = "petfriends-apitests"
)

var (
	ErrMissingBaseURL = errors.New("base URL is required")
	ErrInvalidBaseURL = errors.New("base URL is invalid")
)

type options struct {
	httpClient   Doer
	timeout      time.Duration
	userAgent    string
	logRequests  bool
	logResponses bool
}

// Option customizes a Client.
type Option func(*options)

// WithHTTPClient replaces the default transport.  The timeout option has
// no effect when this is set.
func WithHTTPClient(doer Doer) Option {
	return func(o *options) {
		o.httpClient = doer
	}
}

// WithTimeout sets the request timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *options) {
		o.userAgent = userAgent
	}
}

// WithRequestLogging logs the status and duration of every request.
func WithRequestLogging(enabled bool) Option {
	return func(o *options) {
		o.logRequests = enabled
	}
}

// WithResponseLogging logs every non-empty response body.
func WithResponseLogging(enabled bool) Option {
	return func(o *options) {
		o.logResponses = enabled
	}
}

// Client talks to a single PetFriends instance.
type Client struct {
	baseURL   string
	client    Doer
	endpoints *Endpoints
	options   options
}

var _ Interface = &Client{}

// New returns a client for the service rooted at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	o := options{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(&o)
	}

	doer := o.httpClient
	if doer == nil {
		doer = &http.Client{
			Timeout: o.timeout,
		}
	}

	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		client:    doer,
		endpoints: NewEndpoints(),
		options:   o,
	}

	return c, nil
}

// BaseURL returns the service root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes a single call to the service.
type request struct {
	method      string
	path        string
	header      http.Header
	body        io.Reader
	contentType string
}

// logError logs a failed exchange with its trace context.
func logError(log logr.Logger, duration time.Duration, traceParent string, err error, context string) {
	log.Error(err, context, "duration", duration, "traceID", extractTraceID(traceParent))
}

//nolint:cyclop // test code complexity is acceptable
func (c *Client) doRequest(ctx context.Context, r *request) (*http.Response, []byte, error) {
	fullURL := c.baseURL + r.path

	req, err := http.NewRequestWithContext(ctx, r.method, fullURL, r.body)
	if err != nil {
		return nil, nil, fmt.Errorf("creating request: %w", err)
	}

	for key, values := range r.header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=petfriends")
	req.Header.Set("User-Agent", c.options.userAgent)
	req.Header.Set("Accept", "application/json")

	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	log := logr.FromContextOrDiscard(ctx).WithValues("method", r.method, "path", r.path)

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		logError(log, duration, traceParent, err, "http request failed")
		return nil, nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		logError(log, duration, traceParent, err, "reading response body")
		return resp, nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.options.logRequests {
		log.Info("request complete", "status", resp.StatusCode, "duration", duration, "traceparent", traceParent)
	}

	if c.options.logResponses && len(respBody) > 0 {
		log.Info("response body", "status", resp.StatusCode, "body", string(respBody))
	}

	return resp, respBody, nil
}

// call performs the request and wraps whatever came back.
func call[T any](ctx context.Context, c *Client, r *request) (*Result[T], error) {
	//nolint:bodyclose // response body is closed in doRequest
	resp, body, err := c.doRequest(ctx, r)
	if err != nil {
		return nil, err
	}

	return newResult[T](resp, body), nil
}
