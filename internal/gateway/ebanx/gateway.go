// Package ebanx adapts the Ebanx hosted checkout: setting up a checkout,
// querying its status and building the URL the customer is sent to.
package ebanx

import (
	"context"
	"log/slog"
	"strings"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/metrics"
)

const (
	TestURL     = "https://sandbox.ebanx.com/ws"
	LiveURL     = "https://api.ebanx.com/ws"
	HomepageURL = "http://www.ebanx.com"
	DisplayName = "Ebanx Checkout"
)

var SupportedCountries = []string{"BR"}

type Config struct {
	IntegrationKey string
	Test           bool
	TestURL        string
	LiveURL        string
}

// URL is the base URL for the configured mode.
func (c Config) URL() string {
	if c.Test {
		return c.TestURL
	}
	return c.LiveURL
}

type Gateway struct {
	cfg       Config
	committer *gateway.Committer
}

func New(cfg Config, transport gateway.Transport, logger *slog.Logger, recorder *metrics.Recorder) (*Gateway, error) {
	if strings.TrimSpace(cfg.IntegrationKey) == "" {
		return nil, domain.NewMissingParameterError("integration_key")
	}
	if cfg.TestURL == "" {
		cfg.TestURL = TestURL
	}
	if cfg.LiveURL == "" {
		cfg.LiveURL = LiveURL
	}

	return &Gateway{
		cfg:       cfg,
		committer: gateway.NewCommitter(transport, strategy{}, cfg.Test, logger, recorder),
	}, nil
}

// SetupPurchase registers a checkout for money. The authorization of a
// successful result is the payment hash used by DetailsFor and RedirectURLFor.
func (g *Gateway) SetupPurchase(ctx context.Context, money domain.Money, opts SetupOptions) (domain.Result, error) {
	req, err := buildSetupRequest(g.cfg, money, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionRequest, req)
}

// DetailsFor queries the current state of a checkout. Use DetailsOf on the
// result to read the payment fields.
func (g *Gateway) DetailsFor(ctx context.Context, opts DetailsOptions) (domain.Result, error) {
	req, err := buildDetailsRequest(g.cfg, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionQuery, req)
}

func (g *Gateway) RedirectURLFor(hash string) string {
	return redirectURL(g.cfg, hash)
}
