package cancel_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"confBooker/internal/http-server/handlers/booking/cancel"
	"confBooker/internal/http-server/handlers/booking/cancel/mocks"
	"confBooker/internal/ledger"
	"confBooker/internal/lib/logger/handlers/slogdiscard"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		bookingID      string
		requestBody    string
		mockSetup      func(m *mocks.BookingCanceller)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			bookingID:   "7",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, 7, "user123").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:           "Missing booking ID",
			bookingID:      "",
			requestBody:    `{"user_id": "user123"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"booking id is required"}`,
		},
		{
			name:           "Invalid booking ID format",
			bookingID:      "invalid",
			requestBody:    `{"user_id": "user123"}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid booking id format"}`,
		},
		{
			name:           "Missing user_id",
			bookingID:      "7",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.BookingCanceller) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "UserId")
			},
		},
		{
			name:        "Booking not found",
			bookingID:   "7",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, 7, "user123").Return(ledger.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"booking not found"}`,
		},
		{
			name:        "Forbidden",
			bookingID:   "7",
			requestBody: `{"user_id": "mallory"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, 7, "mallory").Return(ledger.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"booking belongs to another user"}`,
		},
		{
			name:        "Already cancelled",
			bookingID:   "7",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, 7, "user123").Return(ledger.ErrInvalidState)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"booking cannot be cancelled"}`,
		},
		{
			name:        "Internal server error",
			bookingID:   "7",
			requestBody: `{"user_id": "user123"}`,
			mockSetup: func(m *mocks.BookingCanceller) {
				m.On("Cancel", mock.Anything, 7, "user123").Return(assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel booking"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewBookingCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := cancel.New(logger, mockCanceller)

			url := "/bookings/cancel"
			if tc.bookingID != "" {
				url = "/bookings/" + tc.bookingID + "/cancel"
			}

			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/bookings", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/cancel", handler)
				})
				r.Post("/cancel", handler)
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
