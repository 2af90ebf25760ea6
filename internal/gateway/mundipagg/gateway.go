// Package mundipagg adapts the Mundipagg charges API: sale, authorize,
// capture, refund, void, card storage and customer creation.
package mundipagg

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/gateway"
	"github.com/DanielPopoola/ficmart-payment-adapters/internal/metrics"
)

const (
	TestURL     = "https://api.mundipagg.com/core/v1/"
	LiveURL     = "https://api.mundipagg.com/core/v1/"
	HomepageURL = "https://www.mundipagg.com/"
	DisplayName = "Mundipagg"
)

var (
	SupportedCountries = []string{"US"}
	SupportedCardTypes = []string{"visa", "master", "american_express", "discover"}
)

type Config struct {
	APIKey  string
	Test    bool
	TestURL string
	LiveURL string
}

// URL is the base URL for the configured mode, always ending in "/".
func (c Config) URL() string {
	url := c.LiveURL
	if c.Test {
		url = c.TestURL
	}
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return url
}

type Gateway struct {
	cfg       Config
	committer *gateway.Committer
	logger    *slog.Logger
}

func New(cfg Config, transport gateway.Transport, logger *slog.Logger, recorder *metrics.Recorder) (*Gateway, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, domain.NewMissingParameterError("api_key")
	}
	if cfg.TestURL == "" {
		cfg.TestURL = TestURL
	}
	if cfg.LiveURL == "" {
		cfg.LiveURL = LiveURL
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Gateway{
		cfg:       cfg,
		committer: gateway.NewCommitter(transport, strategy{}, cfg.Test, logger, recorder),
		logger:    logger.With("provider", "mundipagg"),
	}, nil
}

func (g *Gateway) Purchase(ctx context.Context, money domain.Money, pm domain.PaymentMethod, opts Options) (domain.Result, error) {
	req, err := buildChargeRequest(g.cfg, actionSale, money, pm, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionSale, req)
}

// Authorize places a hold without capturing it.
func (g *Gateway) Authorize(ctx context.Context, money domain.Money, pm domain.PaymentMethod, opts Options) (domain.Result, error) {
	req, err := buildChargeRequest(g.cfg, actionAuthOnly, money, pm, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionAuthOnly, req)
}

func (g *Gateway) Capture(ctx context.Context, money domain.Money, authorization string) (domain.Result, error) {
	req, err := buildCaptureRequest(g.cfg, money, authorization)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionCapture, req)
}

func (g *Gateway) Refund(ctx context.Context, money domain.Money, authorization string) (domain.Result, error) {
	req, err := buildRefundRequest(g.cfg, money, authorization)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionRefund, req)
}

func (g *Gateway) Void(ctx context.Context, authorization string) (domain.Result, error) {
	req, err := buildVoidRequest(g.cfg, authorization)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionVoid, req)
}

func (g *Gateway) CreateCustomer(ctx context.Context, opts Options) (domain.Result, error) {
	req, err := buildCustomerRequest(g.cfg, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionCustomer, req)
}

// Store saves card for later charges. Without opts.CustomerID a customer
// named after the card holder is created first. A successful result's
// authorization is the "customerId|cardId" token accepted by
// domain.TokenPayment.
func (g *Gateway) Store(ctx context.Context, card domain.Card, opts Options) (domain.Result, error) {
	opts.Name = card.Name

	if strings.TrimSpace(opts.CustomerID) == "" {
		customer, err := g.CreateCustomer(ctx, opts)
		if err != nil {
			return domain.Result{}, fmt.Errorf("creating customer for stored card: %w", err)
		}
		// Customer replies carry no charge status; only the id matters.
		if customer.Authorization == "" {
			return customer, nil
		}
		opts.CustomerID = customer.Authorization
	}

	req, err := buildStoreRequest(g.cfg, card, opts)
	if err != nil {
		return domain.Result{}, err
	}
	return g.committer.Commit(ctx, actionStore, req)
}

// Verify authorizes gateway.VerifyAmount and voids it straight away,
// reporting only the authorization.
func (g *Gateway) Verify(ctx context.Context, pm domain.PaymentMethod, opts Options) (domain.Result, error) {
	money := domain.Money{Amount: gateway.VerifyAmount}
	return gateway.Verify(ctx, g.logger,
		func(ctx context.Context) (domain.Result, error) {
			return g.Authorize(ctx, money, pm, opts)
		},
		func(ctx context.Context, authorization string) (domain.Result, error) {
			return g.Void(ctx, authorization)
		},
	)
}

var scrubPatterns = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`(Authorization: Basic )[A-Za-z0-9+/=]+`), "${1}[FILTERED]"},
	{regexp.MustCompile(`("cvv\\?":\s*\\?")\d*`), "${1}[FILTERED]"},
	{regexp.MustCompile(`("number\\?":\s*\\?")\d{12,19}`), "${1}[FILTERED]"},
}

// Scrub removes the API credential, card numbers and security codes from a
// wire transcript so it can be logged.
func Scrub(transcript string) string {
	for _, p := range scrubPatterns {
		transcript = p.re.ReplaceAllString(transcript, p.repl)
	}
	return transcript
}
