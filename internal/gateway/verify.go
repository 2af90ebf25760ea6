package gateway

import (
	"context"
	"log/slog"

	"github.com/DanielPopoola/ficmart-payment-adapters/internal/domain"
)

// VerifyAmount is the nominal amount, in minor units, authorized by a verification.
const VerifyAmount int64 = 100

// Verify runs authorize and, only when it succeeded, voids the authorization
// it produced. The void is always attempted after a successful authorize and
// its outcome, error included, never changes what the caller gets back: the
// authorize result.
func Verify(
	ctx context.Context,
	logger *slog.Logger,
	authorize func(ctx context.Context) (domain.Result, error),
	void func(ctx context.Context, authorization string) (domain.Result, error),
) (domain.Result, error) {
	auth, err := authorize(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	if !auth.Success {
		return auth, nil
	}

	voided, err := void(ctx, auth.Authorization)
	if logger == nil {
		logger = slog.Default()
	}
	switch {
	case err != nil:
		logger.Warn("verification void failed", "authorization", auth.Authorization, "error", err)
	case !voided.Success:
		logger.Warn("verification void declined", "authorization", auth.Authorization, "message", voided.Message)
	}

	return auth, nil
}
