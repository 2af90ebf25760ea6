// Package gateway holds the provider-neutral commit pipeline: a request goes
// out through a Transport, the reply is parsed, and a provider Strategy turns
// it into a canonical domain.Result.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/metrics"
)

// Request is a fully built provider call. Builders return a new value per
// operation; nothing mutates it afterwards.
type Request struct {
	Method   string
	Endpoint string
	Body     []byte
	Headers  map[string]string
}

// NewRequest encodes payload as JSON. A nil payload produces a request without a body.
func NewRequest(method, endpoint string, payload any, headers map[string]string) (Request, error) {
	req := Request{
		Method:   method,
		Endpoint: endpoint,
		Headers:  maps.Clone(headers),
	}
	if payload == nil {
		return req, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Request{}, fmt.Errorf("error marshalling json: %w", err)
	}
	req.Body = body
	return req, nil
}

// Response is what the transport got back, whatever the status.
type Response struct {
	StatusCode int
	Body       []byte
}

// Failure returns the non-2xx reply as a *Failure, or nil when the call succeeded.
func (r Response) Failure() *Failure {
	if r.StatusCode >= 200 && r.StatusCode < 300 {
		return nil
	}
	return &Failure{StatusCode: r.StatusCode, Body: r.Body}
}

// Failure is a provider reply with a non-2xx HTTP status. Statuses a provider
// cannot classify are returned to the caller as this error.
type Failure struct {
	StatusCode int
	Body       []byte
}

func (f *Failure) Error() string {
	return fmt.Sprintf("provider returned status %d: %s", f.StatusCode, bytes.TrimSpace(f.Body))
}

// Transport performs raw HTTP calls. The returned error is reserved for
// failures where no HTTP reply exists (DNS, TLS, timeouts, cancellation).
type Transport interface {
	Post(ctx context.Context, url string, body []byte, headers map[string]string) (Response, error)
	Get(ctx context.Context, url string, headers map[string]string) (Response, error)
	Delete(ctx context.Context, url string, body []byte, headers map[string]string) (Response, error)
}

// Send dispatches req on the transport verb matching its method.
func Send(ctx context.Context, t Transport, req Request) (Response, error) {
	switch req.Method {
	case http.MethodPost:
		return t.Post(ctx, req.Endpoint, req.Body, req.Headers)
	case http.MethodGet:
		return t.Get(ctx, req.Endpoint, req.Headers)
	case http.MethodDelete:
		return t.Delete(ctx, req.Endpoint, req.Body, req.Headers)
	}
	return Response{}, domain.NewInvalidArgumentError("unsupported http method %q", req.Method)
}

// Strategy is the provider-specific half of a commit.
type Strategy interface {
	Name() string
	// ClassifyFailure maps a non-2xx reply to a result. ok is false when the
	// status is not one the provider knows, in which case the failure propagates.
	ClassifyFailure(f *Failure) (result domain.Result, ok bool)
	BuildResult(action string, raw map[string]any) domain.Result
}

// Committer runs a built request through transport, parser and strategy.
type Committer struct {
	transport Transport
	strategy  Strategy
	test      bool
	logger    *slog.Logger
	metrics   *metrics.Recorder
}

func NewCommitter(transport Transport, strategy Strategy, test bool, logger *slog.Logger, recorder *metrics.Recorder) *Committer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Committer{
		transport: transport,
		strategy:  strategy,
		test:      test,
		logger:    logger.With("provider", strategy.Name()),
		metrics:   recorder,
	}
}

// Test reports whether results are produced against the sandbox.
func (c *Committer) Test() bool {
	return c.test
}

func (c *Committer) Commit(ctx context.Context, action string, req Request) (domain.Result, error) {
	provider := c.strategy.Name()
	start := time.Now()

	resp, err := Send(ctx, c.transport, req)
	c.metrics.ObserveCall(provider, action, resp.StatusCode, time.Since(start))
	if err != nil {
		c.logger.Error("provider call failed", "action", action, "error", err)
		c.metrics.ObserveError(provider, action)
		return domain.Result{}, fmt.Errorf("%s %s: %w", provider, action, err)
	}

	if failure := resp.Failure(); failure != nil {
		result, ok := c.strategy.ClassifyFailure(failure)
		if !ok {
			c.logger.Error("unclassified provider failure", "action", action, "status", failure.StatusCode)
			c.metrics.ObserveError(provider, action)
			return domain.Result{}, failure
		}
		c.logger.Warn("provider rejected request",
			"action", action,
			"status", failure.StatusCode,
			"error_kind", result.ErrorKind,
		)
		return c.finish(action, result), nil
	}

	raw, err := ParseBody(resp.Body)
	if err != nil {
		c.logger.Error("malformed provider response", "action", action, "error", err)
		c.metrics.ObserveError(provider, action)
		return domain.Result{}, err
	}

	return c.finish(action, c.strategy.BuildResult(action, raw)), nil
}

func (c *Committer) finish(action string, result domain.Result) domain.Result {
	result.Test = c.test
	c.metrics.ObserveResult(c.strategy.Name(), action, result.Success, string(result.ErrorKind))
	c.logger.Debug("provider call completed",
		"action", action,
		"success", result.Success,
		"error_kind", result.ErrorKind,
	)
	return result
}
