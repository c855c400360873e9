package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records a single charge attempt for a booking. Bookings keep
// every attempt as an audit trail, so the relation is one-to-many even
// though at most one attempt per booking happens in practice.
type Payment struct {
	ID            int             `json:"id"`
	BookingID     int             `json:"booking_id"`
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method"`
	TransactionID string          `json:"transaction_id,omitempty"`
	Status        PaymentStatus   `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}
