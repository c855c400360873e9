package reserve_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"confBooker/internal/http-server/handlers/booking/reserve"
	"confBooker/internal/http-server/handlers/booking/reserve/mocks"
	"confBooker/internal/ledger"
	"confBooker/internal/lib/logger/handlers/slogdiscard"
	"confBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReserveHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		conferenceID   string
		requestBody    string
		mockSetup      func(m *mocks.SeatReserver)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:         "Success",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(&models.Booking{
						ID:            7,
						UserID:        "user123",
						ConferenceID:  1,
						Status:        models.BookingConfirmed,
						PaymentStatus: models.PaymentCompleted,
					}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"status":"confirmed"`)
				assert.Contains(t, body, `"payment_status":"completed"`)
			},
		},
		{
			name:         "Explicit payment method",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "payment_method": "paypal"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "paypal").
					Return(&models.Booking{ID: 8, Status: models.BookingConfirmed, PaymentStatus: models.PaymentCompleted}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
			},
		},
		{
			name:           "Missing conference ID",
			conferenceID:   "",
			requestBody:    `{"user_id": "user123"}`,
			mockSetup:      func(m *mocks.SeatReserver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"conference id is required"}`,
		},
		{
			name:           "Invalid conference ID format",
			conferenceID:   "invalid",
			requestBody:    `{"user_id": "user123"}`,
			mockSetup:      func(m *mocks.SeatReserver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid conference id format"}`,
		},
		{
			name:           "Invalid JSON",
			conferenceID:   "1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.SeatReserver) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "Missing user_id",
			conferenceID:   "1",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.SeatReserver) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "UserId")
			},
		},
		{
			name:         "Conference not found",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(nil, ledger.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"conference not found"}`,
		},
		{
			name:         "Already booked",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(nil, ledger.ErrAlreadyBooked)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"you have already booked this conference"}`,
		},
		{
			name:         "At capacity",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(nil, ledger.ErrAtCapacity)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"this conference is at full capacity"}`,
		},
		{
			name:         "Payment failed",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(nil, ledger.ErrPaymentFailed)
			},
			expectedStatus: http.StatusPaymentRequired,
			expectedBody:   `{"status":"Error","error":"payment failed"}`,
		},
		{
			name:         "Internal server error",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.SeatReserver) {
				m.On("Reserve", mock.Anything, "user123", 1, "credit_card").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to reserve seat"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockReserver := mocks.NewSeatReserver(t)
			tc.mockSetup(mockReserver)

			handler := reserve.New(logger, mockReserver)

			url := "/conferences/reserve"
			if tc.conferenceID != "" {
				url = "/conferences/" + tc.conferenceID + "/reserve"
			}

			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/conferences", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/reserve", handler)
				})
				r.Post("/reserve", handler)
			})

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
