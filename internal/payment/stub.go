package payment

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StubGateway approves every charge after an optional artificial delay.
// It stands in for a real processor the same way the original system
// stubbed payment capture.
type StubGateway struct {
	Delay time.Duration
}

func NewStubGateway(delay time.Duration) *StubGateway {
	return &StubGateway{Delay: delay}
}

func (g *StubGateway) Charge(ctx context.Context, _ string, _ decimal.Decimal, _ string) (ChargeResult, error) {
	if g.Delay > 0 {
		timer := time.NewTimer(g.Delay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return ChargeResult{}, ctx.Err()
		}
	}

	if err := ctx.Err(); err != nil {
		return ChargeResult{}, err
	}

	return ChargeResult{TransactionID: uuid.NewString()}, nil
}
