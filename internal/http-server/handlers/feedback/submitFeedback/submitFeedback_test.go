package submitFeedback_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"confBooker/internal/http-server/handlers/feedback/submitFeedback"
	"confBooker/internal/http-server/handlers/feedback/submitFeedback/mocks"
	"confBooker/internal/ledger"
	"confBooker/internal/lib/logger/handlers/slogdiscard"
	"confBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitFeedbackHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		conferenceID   string
		requestBody    string
		mockSetup      func(m *mocks.FeedbackSubmitter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:         "Success",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 5, "comments": "great talks"}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 5, "great talks").
					Return(&models.Feedback{ID: 3, UserID: "user123", ConferenceID: 1, Rating: 5, Comments: "great talks"}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"rating":5`)
			},
		},
		{
			name:           "Missing conference ID",
			conferenceID:   "",
			requestBody:    `{"user_id": "user123", "rating": 5}`,
			mockSetup:      func(m *mocks.FeedbackSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"conference id is required"}`,
		},
		{
			name:           "Invalid conference ID format",
			conferenceID:   "invalid",
			requestBody:    `{"user_id": "user123", "rating": 5}`,
			mockSetup:      func(m *mocks.FeedbackSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid conference id format"}`,
		},
		{
			name:           "Missing rating",
			conferenceID:   "1",
			requestBody:    `{"user_id": "user123"}`,
			mockSetup:      func(m *mocks.FeedbackSubmitter) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"Error"`)
				assert.Contains(t, body, "Rating")
			},
		},
		{
			name:         "Rating out of range",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 6}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 6, "").
					Return(nil, ledger.ErrInvalidRating)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"rating must be between 1 and 5"}`,
		},
		{
			name:         "Conference not found",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 4}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 4, "").
					Return(nil, ledger.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"conference not found"}`,
		},
		{
			name:         "Not booked",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 4}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 4, "").
					Return(nil, ledger.ErrNotBooked)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you have not booked this conference"}`,
		},
		{
			name:         "Duplicate feedback",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 4}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 4, "").
					Return(nil, ledger.ErrDuplicateFeedback)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"you have already provided feedback for this conference"}`,
		},
		{
			name:         "Internal server error",
			conferenceID: "1",
			requestBody:  `{"user_id": "user123", "rating": 4}`,
			mockSetup: func(m *mocks.FeedbackSubmitter) {
				m.On("SubmitFeedback", mock.Anything, "user123", 1, 4, "").
					Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to submit feedback"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSubmitter := mocks.NewFeedbackSubmitter(t)
			tc.mockSetup(mockSubmitter)

			handler := submitFeedback.New(logger, mockSubmitter)

			url := "/conferences/feedback"
			if tc.conferenceID != "" {
				url = "/conferences/" + tc.conferenceID + "/feedback"
			}

			req, err := http.NewRequest("POST", url, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/conferences", func(r chi.Router) {
				r.Route("/{id}", func(r chi.Router) {
					r.Post("/feedback", handler)
				})
				r.Post("/feedback", handler)
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
