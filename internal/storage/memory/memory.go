package memory

import (
	"context"
	"sync"
	"time"

	"confBooker/internal/models"
	"confBooker/internal/storage"
)

// Storage keeps everything in process. It backs the "memory" storage
// mode and the ledger tests, enforcing the same uniqueness semantics as
// the postgres schema.
type Storage struct {
	mu sync.RWMutex

	conferences map[int]models.Conference
	bookings    map[int]models.Booking
	payments    map[int]models.Payment
	feedback    map[int]models.Feedback

	nextConferenceID int
	nextBookingID    int
	nextPaymentID    int
	nextFeedbackID   int
}

func New() *Storage {
	return &Storage{
		conferences:      make(map[int]models.Conference),
		bookings:         make(map[int]models.Booking),
		payments:         make(map[int]models.Payment),
		feedback:         make(map[int]models.Feedback),
		nextConferenceID: 1,
		nextBookingID:    1,
		nextPaymentID:    1,
		nextFeedbackID:   1,
	}
}

func (s *Storage) CreateConference(_ context.Context, conf *models.Conference) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conf.ID = s.nextConferenceID
	s.nextConferenceID++
	s.conferences[conf.ID] = *conf

	return conf.ID, nil
}

func (s *Storage) GetConference(_ context.Context, id int) (*models.Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conf, ok := s.conferences[id]
	if !ok {
		return nil, storage.ErrConferenceNotFound
	}

	return &conf, nil
}

func (s *Storage) GetAllConferences(_ context.Context) ([]models.Conference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conferences := make([]models.Conference, 0, len(s.conferences))
	for id := 1; id < s.nextConferenceID; id++ {
		if conf, ok := s.conferences[id]; ok {
			conferences = append(conferences, conf)
		}
	}

	return conferences, nil
}

func (s *Storage) CreateBooking(_ context.Context, booking *models.Booking) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, b := range s.bookings {
		if b.UserID == booking.UserID && b.ConferenceID == booking.ConferenceID &&
			b.Status != models.BookingCancelled {
			return 0, storage.ErrAlreadyBooked
		}
	}

	booking.ID = s.nextBookingID
	s.nextBookingID++
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	s.bookings[booking.ID] = *booking

	return booking.ID, nil
}

func (s *Storage) GetBooking(_ context.Context, id int) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, storage.ErrBookingNotFound
	}

	return &booking, nil
}

func (s *Storage) GetBookingsByUser(_ context.Context, userID string) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var bookings []models.Booking
	for id := s.nextBookingID - 1; id >= 1; id-- {
		if b, ok := s.bookings[id]; ok && b.UserID == userID {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}

func (s *Storage) UpdateBookingStatus(_ context.Context, id int, status models.BookingStatus, payment models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[id]
	if !ok {
		return storage.ErrBookingNotFound
	}

	booking.Status = status
	booking.PaymentStatus = payment
	s.bookings[id] = booking

	return nil
}

func (s *Storage) ActiveBookingCount(_ context.Context, conferenceID int) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, b := range s.bookings {
		if b.ConferenceID == conferenceID &&
			(b.Status == models.BookingPending || b.Status == models.BookingConfirmed) {
			count++
		}
	}

	return count, nil
}

func (s *Storage) HasActiveBooking(_ context.Context, userID string, conferenceID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.UserID == userID && b.ConferenceID == conferenceID &&
			b.Status != models.BookingCancelled {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) HasBooking(_ context.Context, userID string, conferenceID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bookings {
		if b.UserID == userID && b.ConferenceID == conferenceID {
			return true, nil
		}
	}

	return false, nil
}

func (s *Storage) CreatePayment(_ context.Context, payment *models.Payment) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payment.ID = s.nextPaymentID
	s.nextPaymentID++
	if payment.CreatedAt.IsZero() {
		payment.CreatedAt = time.Now().UTC()
	}
	s.payments[payment.ID] = *payment

	return payment.ID, nil
}

func (s *Storage) GetPaymentsByBooking(_ context.Context, bookingID int) ([]models.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var payments []models.Payment
	for id := 1; id < s.nextPaymentID; id++ {
		if p, ok := s.payments[id]; ok && p.BookingID == bookingID {
			payments = append(payments, p)
		}
	}

	return payments, nil
}

func (s *Storage) CreateFeedback(_ context.Context, feedback *models.Feedback) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.feedback {
		if f.UserID == feedback.UserID && f.ConferenceID == feedback.ConferenceID {
			return 0, storage.ErrDuplicateFeedback
		}
	}

	feedback.ID = s.nextFeedbackID
	s.nextFeedbackID++
	s.feedback[feedback.ID] = *feedback

	return feedback.ID, nil
}

func (s *Storage) FailStalePending(_ context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)

	var failed int64
	for id, b := range s.bookings {
		if b.Status == models.BookingPending && b.CreatedAt.Before(cutoff) {
			b.Status = models.BookingFailed
			b.PaymentStatus = models.PaymentFailed
			s.bookings[id] = b
			failed++
		}
	}

	return failed, nil
}
