// Package transport issues the raw HTTP calls for the provider gateways.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/config"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
)

type HTTPTransport struct {
	httpClient *http.Client
	logger     *slog.Logger
}

func NewHTTPTransport(cfg config.TransportConfig, logger *slog.Logger) *HTTPTransport {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPTransport{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

var _ gateway.Transport = (*HTTPTransport)(nil)

func (t *HTTPTransport) Post(ctx context.Context, url string, body []byte, headers map[string]string) (gateway.Response, error) {
	return t.sendRequest(ctx, http.MethodPost, url, body, headers)
}

func (t *HTTPTransport) Get(ctx context.Context, url string, headers map[string]string) (gateway.Response, error) {
	return t.sendRequest(ctx, http.MethodGet, url, nil, headers)
}

func (t *HTTPTransport) Delete(ctx context.Context, url string, body []byte, headers map[string]string) (gateway.Response, error) {
	return t.sendRequest(ctx, http.MethodDelete, url, body, headers)
}

func (t *HTTPTransport) sendRequest(ctx context.Context, method, url string, body []byte, headers map[string]string) (gateway.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return gateway.Response{}, fmt.Errorf("error creating request: %w", err)
	}

	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return gateway.Response{}, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return gateway.Response{}, fmt.Errorf("error reading response body: %w", err)
	}

	t.logger.Debug("provider responded",
		"method", method,
		"host", httpReq.URL.Host,
		"path", httpReq.URL.Path,
		"status", resp.StatusCode,
	)

	return gateway.Response{StatusCode: resp.StatusCode, Body: respBody}, nil
}
