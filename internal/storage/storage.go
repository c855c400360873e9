package storage

import (
	"context"
	"errors"
	"time"

	"confBooker/internal/models"
)

var (
	ErrConferenceNotFound = errors.New("conference not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyBooked      = errors.New("user already has an active booking for this conference")
	ErrDuplicateFeedback  = errors.New("feedback already exists for this conference")
)

// Storage is the persistence contract the booking ledger and the HTTP
// handlers work against. Uniqueness of active bookings per (user,
// conference) and of feedback per (user, conference) is enforced here;
// capacity is enforced by the ledger under its per-conference lock.
type Storage interface {
	CreateConference(ctx context.Context, conf *models.Conference) (int, error)
	GetConference(ctx context.Context, id int) (*models.Conference, error)
	GetAllConferences(ctx context.Context) ([]models.Conference, error)

	// CreateBooking inserts a booking and returns ErrAlreadyBooked when
	// the user already holds a non-cancelled booking for the conference.
	CreateBooking(ctx context.Context, booking *models.Booking) (int, error)
	GetBooking(ctx context.Context, id int) (*models.Booking, error)
	GetBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus, payment models.PaymentStatus) error

	// HasActiveBooking reports whether the user holds a non-cancelled
	// booking for the conference.
	HasActiveBooking(ctx context.Context, userID string, conferenceID int) (bool, error)
	// ActiveBookingCount counts pending plus confirmed bookings for the
	// conference. Pending bookings hold a seat for the duration of the
	// payment window.
	ActiveBookingCount(ctx context.Context, conferenceID int) (int, error)
	// HasBooking reports whether the user ever booked the conference,
	// regardless of booking status.
	HasBooking(ctx context.Context, userID string, conferenceID int) (bool, error)

	CreatePayment(ctx context.Context, payment *models.Payment) (int, error)
	GetPaymentsByBooking(ctx context.Context, bookingID int) ([]models.Payment, error)

	CreateFeedback(ctx context.Context, feedback *models.Feedback) (int, error)

	// FailStalePending moves pending bookings older than the given age to
	// failed/failed. It is crash recovery: a pending booking normally
	// lives only for the duration of a single charge attempt.
	FailStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}
