package payment

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChargeResult carries the external transaction reference of a
// successful charge.
type ChargeResult struct {
	TransactionID string
}

// Gateway is the external payment collaborator. A single charge attempt
// per reservation; any retry policy lives behind this interface, not in
// the ledger. Implementations must honor ctx cancellation and deadline.
type Gateway interface {
	Charge(ctx context.Context, userID string, amount decimal.Decimal, method string) (ChargeResult, error)
}

// GatewayFunc adapts a function to the Gateway interface.
type GatewayFunc func(ctx context.Context, userID string, amount decimal.Decimal, method string) (ChargeResult, error)

func (f GatewayFunc) Charge(ctx context.Context, userID string, amount decimal.Decimal, method string) (ChargeResult, error) {
	return f(ctx, userID, amount, method)
}
