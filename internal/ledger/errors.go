package ledger

import "errors"

// Every error the ledger returns is recoverable and user-facing; the
// HTTP layer maps each one to a specific status and message.
var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyBooked     = errors.New("already booked")
	ErrAtCapacity        = errors.New("conference is at full capacity")
	ErrPaymentFailed     = errors.New("payment failed")
	ErrForbidden         = errors.New("booking belongs to another user")
	ErrInvalidState      = errors.New("booking is not in a cancellable state")
	ErrNotBooked         = errors.New("user has no booking for this conference")
	ErrDuplicateFeedback = errors.New("feedback already submitted")
	ErrInvalidRating     = errors.New("rating must be between 1 and 5")
)
