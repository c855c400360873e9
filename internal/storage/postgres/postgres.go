package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"confBooker/internal/config"
	"confBooker/internal/models"
	"confBooker/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.migrate(); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

// migrate creates the schema on startup. The partial unique index on
// bookings encodes the uniqueness policy: a cancelled booking does not
// block re-booking, any other status does.
func (s *Storage) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS conferences (
			id SERIAL PRIMARY KEY,
			topic VARCHAR(100) NOT NULL,
			description VARCHAR(255) NOT NULL DEFAULT '',
			date DATE NOT NULL,
			time_start VARCHAR(8) NOT NULL DEFAULT '',
			time_end VARCHAR(8) NOT NULL DEFAULT '',
			capacity INTEGER NOT NULL CHECK (capacity > 0),
			price NUMERIC(10,2) NOT NULL DEFAULT 0.00 CHECK (price >= 0)
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			conference_id INTEGER NOT NULL REFERENCES conferences (id) ON DELETE CASCADE,
			status VARCHAR(45) NOT NULL DEFAULT 'pending',
			payment_status VARCHAR(45) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE UNIQUE INDEX IF NOT EXISTS bookings_user_conference_active
			ON bookings (user_id, conference_id) WHERE status <> 'cancelled'`,
		`CREATE TABLE IF NOT EXISTS payments (
			id SERIAL PRIMARY KEY,
			booking_id INTEGER NOT NULL REFERENCES bookings (id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL,
			method VARCHAR(45) NOT NULL,
			transaction_id VARCHAR(100),
			status VARCHAR(45) NOT NULL DEFAULT 'pending',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS feedback (
			id SERIAL PRIMARY KEY,
			user_id VARCHAR(100) NOT NULL,
			conference_id INTEGER NOT NULL REFERENCES conferences (id) ON DELETE CASCADE,
			rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
			comments VARCHAR(255) NOT NULL DEFAULT '',
			UNIQUE (user_id, conference_id)
		)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

func (s *Storage) CreateConference(ctx context.Context, conf *models.Conference) (int, error) {
	query := `
		INSERT INTO conferences (topic, description, date, time_start, time_end, capacity, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		conf.Topic, conf.Description, conf.Date, conf.TimeStart, conf.TimeEnd, conf.Capacity, conf.Price,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create conference: %w", err)
	}

	conf.ID = id

	return id, nil
}

func (s *Storage) GetConference(ctx context.Context, id int) (*models.Conference, error) {
	query := `
		SELECT id, topic, description, date, time_start, time_end, capacity, price
		FROM conferences
		WHERE id = $1`

	var conf models.Conference
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&conf.ID,
		&conf.Topic,
		&conf.Description,
		&conf.Date,
		&conf.TimeStart,
		&conf.TimeEnd,
		&conf.Capacity,
		&conf.Price,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrConferenceNotFound
		}
		return nil, fmt.Errorf("failed to get conference: %w", err)
	}

	return &conf, nil
}

func (s *Storage) GetAllConferences(ctx context.Context) ([]models.Conference, error) {
	query := `
		SELECT id, topic, description, date, time_start, time_end, capacity, price
		FROM conferences
		ORDER BY date ASC, time_start ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get conferences: %w", err)
	}
	defer rows.Close()

	var conferences []models.Conference
	for rows.Next() {
		var conf models.Conference
		err = rows.Scan(
			&conf.ID,
			&conf.Topic,
			&conf.Description,
			&conf.Date,
			&conf.TimeStart,
			&conf.TimeEnd,
			&conf.Capacity,
			&conf.Price,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conference: %w", err)
		}
		conferences = append(conferences, conf)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conferences: %w", err)
	}

	return conferences, nil
}

func (s *Storage) CreateBooking(ctx context.Context, booking *models.Booking) (int, error) {
	query := `
		INSERT INTO bookings (user_id, conference_id, status, payment_status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at`

	err := s.DB.QueryRowContext(ctx, query,
		booking.UserID, booking.ConferenceID, booking.Status, booking.PaymentStatus,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrAlreadyBooked
		}
		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	return booking.ID, nil
}

func (s *Storage) GetBooking(ctx context.Context, id int) (*models.Booking, error) {
	query := `
		SELECT id, user_id, conference_id, status, payment_status, created_at
		FROM bookings
		WHERE id = $1`

	var booking models.Booking
	err := s.DB.QueryRowContext(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ConferenceID,
		&booking.Status,
		&booking.PaymentStatus,
		&booking.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) GetBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	query := `
		SELECT id, user_id, conference_id, status, payment_status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.UserID,
			&booking.ConferenceID,
			&booking.Status,
			&booking.PaymentStatus,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) UpdateBookingStatus(ctx context.Context, id int, status models.BookingStatus, payment models.PaymentStatus) error {
	query := `
		UPDATE bookings
		SET status = $2, payment_status = $3
		WHERE id = $1`

	result, err := s.DB.ExecContext(ctx, query, id, status, payment)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

func (s *Storage) ActiveBookingCount(ctx context.Context, conferenceID int) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE conference_id = $1 AND status IN ('pending', 'confirmed')`

	var count int
	if err := s.DB.QueryRowContext(ctx, query, conferenceID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}

	return count, nil
}

func (s *Storage) HasActiveBooking(ctx context.Context, userID string, conferenceID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND conference_id = $2 AND status <> 'cancelled'
		)`

	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userID, conferenceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active booking: %w", err)
	}

	return exists, nil
}

func (s *Storage) HasBooking(ctx context.Context, userID string, conferenceID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE user_id = $1 AND conference_id = $2
		)`

	var exists bool
	if err := s.DB.QueryRowContext(ctx, query, userID, conferenceID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check booking existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) CreatePayment(ctx context.Context, payment *models.Payment) (int, error) {
	query := `
		INSERT INTO payments (booking_id, amount, method, transaction_id, status, created_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NOW())
		RETURNING id, created_at`

	err := s.DB.QueryRowContext(ctx, query,
		payment.BookingID, payment.Amount, payment.Method, payment.TransactionID, payment.Status,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create payment: %w", err)
	}

	return payment.ID, nil
}

func (s *Storage) GetPaymentsByBooking(ctx context.Context, bookingID int) ([]models.Payment, error) {
	query := `
		SELECT id, booking_id, amount, method, COALESCE(transaction_id, ''), status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at ASC`

	rows, err := s.DB.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %w", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		var payment models.Payment
		err = rows.Scan(
			&payment.ID,
			&payment.BookingID,
			&payment.Amount,
			&payment.Method,
			&payment.TransactionID,
			&payment.Status,
			&payment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, payment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

func (s *Storage) CreateFeedback(ctx context.Context, feedback *models.Feedback) (int, error) {
	query := `
		INSERT INTO feedback (user_id, conference_id, rating, comments)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	err := s.DB.QueryRowContext(ctx, query,
		feedback.UserID, feedback.ConferenceID, feedback.Rating, feedback.Comments,
	).Scan(&feedback.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, storage.ErrDuplicateFeedback
		}
		return 0, fmt.Errorf("failed to create feedback: %w", err)
	}

	return feedback.ID, nil
}

func (s *Storage) FailStalePending(ctx context.Context, olderThan time.Duration) (int64, error) {
	query := `
		UPDATE bookings
		SET status = 'failed', payment_status = 'failed'
		WHERE status = 'pending' AND created_at < NOW() - $1 * INTERVAL '1 second'`

	result, err := s.DB.ExecContext(ctx, query, olderThan.Seconds())
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale pending bookings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to fail stale pending bookings: %w", err)
	}

	return affected, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
