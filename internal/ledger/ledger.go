// Package ledger owns the lifecycle of a seat reservation and its
// payment. It enforces the two booking invariants: at most one
// non-cancelled booking per (user, conference), and never more active
// bookings (pending + confirmed) than the conference has seats.
//
// Reservation runs in three phases: the uniqueness and capacity checks
// plus the provisional insert happen under a per-conference mutex; the
// gateway charge runs outside any lock on a context detached from the
// caller's; the finalize step reacquires the mutex briefly. A pending
// booking holds its seat for the whole payment window, so two users can
// never pass the capacity check for the same last seat.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/models"
	"confBooker/internal/payment"
	"confBooker/internal/storage"

	"github.com/shopspring/decimal"
)

const defaultChargeTimeout = 15 * time.Second

type Ledger struct {
	log     *slog.Logger
	store   storage.Storage
	gateway payment.Gateway

	chargeTimeout time.Duration
	locks         *conferenceLocks
}

type Options struct {
	// ChargeTimeout bounds a single gateway charge attempt. A timed-out
	// charge is treated exactly like a declined one.
	ChargeTimeout time.Duration
}

func New(log *slog.Logger, store storage.Storage, gateway payment.Gateway, opts Options) *Ledger {
	timeout := opts.ChargeTimeout
	if timeout <= 0 {
		timeout = defaultChargeTimeout
	}

	return &Ledger{
		log:           log,
		store:         store,
		gateway:       gateway,
		chargeTimeout: timeout,
		locks:         newConferenceLocks(),
	}
}

// Reserve books a seat for the user and captures payment for it. On
// gateway success the booking comes back confirmed/completed; on
// gateway failure or timeout the booking stays behind as an auditable
// failed record and ErrPaymentFailed is returned.
func (l *Ledger) Reserve(ctx context.Context, userID string, conferenceID int, method string) (*models.Booking, error) {
	const op = "ledger.Reserve"

	log := l.log.With(
		slog.String("op", op),
		slog.String("user_id", userID),
		slog.Int("conference_id", conferenceID),
	)

	conf, err := l.store.GetConference(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, storage.ErrConferenceNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booking, err := l.reserveSeat(ctx, userID, conf)
	if err != nil {
		return nil, err
	}

	log.Info("seat reserved provisionally", slog.Int("booking_id", booking.ID))

	// The charge and finalize must run to completion even if the caller
	// goes away mid-flight, otherwise a disconnect could strand the
	// booking between phases. Only the charge timeout bounds the charge.
	chargeCtx, cancelCharge := context.WithTimeout(context.WithoutCancel(ctx), l.chargeTimeout)
	defer cancelCharge()

	result, chargeErr := l.gateway.Charge(chargeCtx, userID, conf.Price, method)

	// Finalize gets a fresh deadline: after a gateway timeout chargeCtx is
	// already expired, and the failed booking and its payment record must
	// still be written.
	finalizeCtx, cancelFinalize := context.WithTimeout(context.WithoutCancel(ctx), l.chargeTimeout)
	defer cancelFinalize()

	if chargeErr != nil {
		log.Warn("charge failed", sl.Err(chargeErr))

		if err = l.finalize(finalizeCtx, booking, conf.Price, method, "", false); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, chargeErr)
	}

	if err = l.finalize(finalizeCtx, booking, conf.Price, method, result.TransactionID, true); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking confirmed",
		slog.Int("booking_id", booking.ID),
		slog.String("transaction_id", result.TransactionID),
	)

	return booking, nil
}

// reserveSeat performs the check-then-create sequence under the
// per-conference lock. A uniqueness conflict from the store means a
// concurrent insert slipped in from outside this process; it is retried
// once before surfacing, per the error-handling contract.
func (l *Ledger) reserveSeat(ctx context.Context, userID string, conf *models.Conference) (*models.Booking, error) {
	for attempt := 0; attempt < 2; attempt++ {
		booking, err := l.tryReserveSeat(ctx, userID, conf)
		if err == nil {
			return booking, nil
		}
		if !errors.Is(err, storage.ErrAlreadyBooked) {
			return nil, err
		}
	}

	return nil, ErrAlreadyBooked
}

func (l *Ledger) tryReserveSeat(ctx context.Context, userID string, conf *models.Conference) (*models.Booking, error) {
	const op = "ledger.tryReserveSeat"

	lock := l.locks.get(conf.ID)
	lock.Lock()
	defer lock.Unlock()

	booked, err := l.store.HasActiveBooking(ctx, userID, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if booked {
		return nil, ErrAlreadyBooked
	}

	active, err := l.store.ActiveBookingCount(ctx, conf.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if active >= conf.Capacity {
		return nil, ErrAtCapacity
	}

	booking := &models.Booking{
		UserID:        userID,
		ConferenceID:  conf.ID,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentPending,
		CreatedAt:     time.Now().UTC(),
	}

	if _, err = l.store.CreateBooking(ctx, booking); err != nil {
		if errors.Is(err, storage.ErrAlreadyBooked) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return booking, nil
}

// finalize records the charge attempt and moves the booking to its
// terminal payment state under a short lock acquisition. The payment
// amount is fixed to the conference price at booking time and never
// recalculated.
func (l *Ledger) finalize(ctx context.Context, booking *models.Booking, amount decimal.Decimal, method, transactionID string, success bool) error {
	const op = "ledger.finalize"

	lock := l.locks.get(booking.ConferenceID)
	lock.Lock()
	defer lock.Unlock()

	pay := &models.Payment{
		BookingID:     booking.ID,
		Amount:        amount,
		Method:        method,
		TransactionID: transactionID,
		Status:        models.PaymentFailed,
	}
	booking.Status = models.BookingFailed
	booking.PaymentStatus = models.PaymentFailed

	if success {
		pay.Status = models.PaymentCompleted
		booking.Status = models.BookingConfirmed
		booking.PaymentStatus = models.PaymentCompleted
	}

	if _, err := l.store.CreatePayment(ctx, pay); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := l.store.UpdateBookingStatus(ctx, booking.ID, booking.Status, booking.PaymentStatus); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Cancel moves a booking to cancelled on behalf of its owner, releasing
// the seat immediately. Payment state is left untouched: there is no
// refund workflow. Cancelled and failed bookings are terminal.
func (l *Ledger) Cancel(ctx context.Context, bookingID int, userID string) error {
	const op = "ledger.Cancel"

	booking, err := l.store.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if booking.UserID != userID {
		return ErrForbidden
	}

	lock := l.locks.get(booking.ConferenceID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: status may have moved since the ownership
	// check.
	booking, err = l.store.GetBooking(ctx, bookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if booking.Status == models.BookingCancelled || booking.Status == models.BookingFailed {
		return ErrInvalidState
	}

	if err = l.store.UpdateBookingStatus(ctx, bookingID, models.BookingCancelled, booking.PaymentStatus); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	l.log.Info("booking cancelled",
		slog.String("op", op),
		slog.Int("booking_id", bookingID),
		slog.String("user_id", userID),
	)

	return nil
}

// SubmitFeedback records a rating and comment for a conference the user
// has booked. Any booking status qualifies, matching the original
// product behavior.
func (l *Ledger) SubmitFeedback(ctx context.Context, userID string, conferenceID, rating int, comments string) (*models.Feedback, error) {
	const op = "ledger.SubmitFeedback"

	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := l.store.GetConference(ctx, conferenceID); err != nil {
		if errors.Is(err, storage.ErrConferenceNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	booked, err := l.store.HasBooking(ctx, userID, conferenceID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !booked {
		return nil, ErrNotBooked
	}

	feedback := &models.Feedback{
		UserID:       userID,
		ConferenceID: conferenceID,
		Rating:       rating,
		Comments:     comments,
	}

	if _, err = l.store.CreateFeedback(ctx, feedback); err != nil {
		if errors.Is(err, storage.ErrDuplicateFeedback) {
			return nil, ErrDuplicateFeedback
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return feedback, nil
}

// SpotsLeft reports remaining seats: capacity minus active (pending
// plus confirmed) bookings.
func (l *Ledger) SpotsLeft(ctx context.Context, conferenceID int) (int, error) {
	const op = "ledger.SpotsLeft"

	conf, err := l.store.GetConference(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, storage.ErrConferenceNotFound) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	active, err := l.store.ActiveBookingCount(ctx, conferenceID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return conf.Capacity - active, nil
}
