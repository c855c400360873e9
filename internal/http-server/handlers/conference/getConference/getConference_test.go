package getConference_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"confBooker/internal/http-server/handlers/conference/getConference"
	"confBooker/internal/http-server/handlers/conference/getConference/mocks"
	"confBooker/internal/lib/logger/handlers/slogdiscard"
	"confBooker/internal/models"
	"confBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetConferenceHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	conf := &models.Conference{
		ID:        1,
		Topic:     "GoLab",
		Date:      time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
		TimeStart: "09:00",
		TimeEnd:   "18:00",
		Capacity:  300,
		Price:     decimal.NewFromFloat(149.99),
	}

	testCases := []struct {
		name           string
		conferenceID   string
		mockSetup      func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:         "Success",
			conferenceID: "1",
			mockSetup: func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {
				info.On("GetConference", mock.Anything, 1).Return(conf, nil)
				spots.On("SpotsLeft", mock.Anything, 1).Return(42, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"status":"OK"`)
				assert.Contains(t, body, `"topic":"GoLab"`)
				assert.Contains(t, body, `"spots_left":42`)
			},
		},
		{
			name:           "Missing conference ID",
			conferenceID:   "",
			mockSetup:      func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"conference id is required"}`,
		},
		{
			name:           "Invalid conference ID format",
			conferenceID:   "invalid",
			mockSetup:      func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid conference id format"}`,
		},
		{
			name:         "Conference not found",
			conferenceID: "1",
			mockSetup: func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {
				info.On("GetConference", mock.Anything, 1).Return(nil, storage.ErrConferenceNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"conference not found"}`,
		},
		{
			name:         "Spots lookup fails",
			conferenceID: "1",
			mockSetup: func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {
				info.On("GetConference", mock.Anything, 1).Return(conf, nil)
				spots.On("SpotsLeft", mock.Anything, 1).Return(0, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get conference information"}`,
		},
		{
			name:         "Internal server error",
			conferenceID: "1",
			mockSetup: func(info *mocks.ConferenceProvider, spots *mocks.SpotsCounter) {
				info.On("GetConference", mock.Anything, 1).Return(nil, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get conference information"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockInfo := mocks.NewConferenceProvider(t)
			mockSpots := mocks.NewSpotsCounter(t)
			tc.mockSetup(mockInfo, mockSpots)

			handler := getConference.New(logger, mockInfo, mockSpots)

			url := "/conferences"
			if tc.conferenceID != "" {
				url = "/conferences/" + tc.conferenceID
			}

			req, err := http.NewRequest("GET", url, nil)
			require.NoError(t, err)

			router := chi.NewRouter()
			router.Route("/conferences", func(r chi.Router) {
				r.Get("/", handler)
				r.Get("/{id}", handler)
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
