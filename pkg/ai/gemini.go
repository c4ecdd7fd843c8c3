// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ai

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"google.golang.org/genai"

	"github.com/bfhl-api/bfhl/pkg/defaults"
	cerrors "github.com/bfhl-api/bfhl/pkg/errors"
)

// Config configures the Gemini client.
type Config struct {
	// APIKey is the Gemini API key. Required.
	APIKey string

	// Model defaults to defaults.GeminiModel.
	Model string

	// BaseURL overrides the SDK endpoint (proxies, tests).
	BaseURL string

	// APIVersion defaults to defaults.GeminiAPIVersion.
	APIVersion string

	// Timeout bounds a single request. Defaults to defaults.AIRequestTimeout.
	Timeout time.Duration

	// HTTPClient replaces the tuned default client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// GeminiClient implements Completer on top of the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient creates a Gemini client. It returns ErrNotConfigured when
// cfg.APIKey is blank.
func NewGeminiClient(ctx context.Context, cfg Config) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrNotConfigured
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaults.GeminiModel
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = defaults.GeminiAPIVersion
	}

	hc := cfg.HTTPClient
	if hc == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaults.AIRequestTimeout
		}
		hc = newHTTPClient(timeout)
	}
	hc = withStatusRecorder(hc)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: apiVersion,
		},
	})
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInternal, "failed to create GenAI client", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Model returns the model name requests are sent to.
func (c *GeminiClient) Model() string {
	return c.model
}

// Complete sends prompt as the only user content and returns the text of the
// first part of the first candidate. A response without text yields "".
func (c *GeminiClient) Complete(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	contents := []*genai.Content{
		{Parts: []*genai.Part{genai.NewPartFromText(prompt)}},
	}

	rec := &statusRecorder{}
	resp, err := c.client.Models.GenerateContent(withStatus(ctx, rec), c.model, contents, nil)
	if err != nil {
		cerr := c.classify(err, rec.get())
		if errors.Is(cerr, ErrQuotaExceeded) {
			observe(start, outcomeQuotaExceeded)
		} else {
			observe(start, outcomeError)
		}
		slog.Warn("gemini request failed",
			"model", c.model,
			"duration", time.Since(start).String(),
			"error", err,
		)
		return "", cerr
	}

	observe(start, outcomeSuccess)
	slog.Debug("gemini request completed",
		"model", c.model,
		"duration", time.Since(start).String(),
	)

	return candidateText(resp), nil
}

// classify maps a failed call to ErrQuotaExceeded or ErrUpstream. The HTTP
// status seen on the wire wins over the code in the error body.
func (c *GeminiClient) classify(err error, httpStatus int) error {
	status := httpStatus
	if status == 0 {
		status = statusCode(err)
	}
	ctx := map[string]any{
		"model": c.model,
	}
	if status != 0 {
		ctx["status"] = status
	}

	if status == http.StatusTooManyRequests {
		return cerrors.WrapWithContext(cerrors.ErrCodeRateLimitExceeded,
			"gemini quota exceeded", fmt.Errorf("%w: %w", ErrQuotaExceeded, err), ctx)
	}
	return cerrors.WrapWithContext(cerrors.ErrCodeUpstream,
		"gemini request failed", fmt.Errorf("%w: %w", ErrUpstream, err), ctx)
}

type statusKey struct{}

// statusRecorder holds the status of the last HTTP response of one call.
type statusRecorder struct {
	code atomic.Int32
}

func (r *statusRecorder) get() int {
	return int(r.code.Load())
}

func withStatus(ctx context.Context, rec *statusRecorder) context.Context {
	return context.WithValue(ctx, statusKey{}, rec)
}

// statusTransport records response status codes on the recorder carried by
// the request context.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err == nil && resp != nil {
		if rec, ok := req.Context().Value(statusKey{}).(*statusRecorder); ok {
			rec.code.Store(int32(resp.StatusCode))
		}
	}
	return resp, err
}

// withStatusRecorder returns a copy of hc whose transport records statuses.
func withStatusRecorder(hc *http.Client) *http.Client {
	base := hc.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	wrapped := *hc
	wrapped.Transport = &statusTransport{base: base}
	return &wrapped
}

// statusCode extracts the status reported in the API error body, or 0 for
// transport level failures.
func statusCode(err error) int {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code
	}
	return 0
}

func candidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil || len(cand.Content.Parts) == 0 {
		return ""
	}
	if part := cand.Content.Parts[0]; part != nil {
		return part.Text
	}
	return ""
}

func newHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,

		DialContext: (&net.Dialer{
			Timeout:   defaults.HTTPConnectTimeout,
			KeepAlive: defaults.HTTPKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   defaults.HTTPTLSHandshakeTimeout,
		ResponseHeaderTimeout: defaults.HTTPResponseHeaderTimeout,
		ExpectContinueTimeout: defaults.HTTPExpectContinueTimeout,

		IdleConnTimeout:   defaults.HTTPIdleConnTimeout,
		ForceAttemptHTTP2: true,

		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: t,
	}
}
