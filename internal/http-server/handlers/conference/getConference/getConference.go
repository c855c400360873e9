package getConference

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"confBooker/internal/lib/api/response"
	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/models"
	"confBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ConferenceInfoResponse struct {
	response.Response
	Conference *models.Conference `json:"conference"`
	SpotsLeft  int                `json:"spots_left"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConferenceProvider
type ConferenceProvider interface {
	GetConference(ctx context.Context, id int) (*models.Conference, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SpotsCounter
type SpotsCounter interface {
	SpotsLeft(ctx context.Context, conferenceID int) (int, error)
}

func New(log *slog.Logger, info ConferenceProvider, spots SpotsCounter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conference.getConference.New"

		log = log.With(slog.String("op", op))

		confIdStr := chi.URLParam(r, "id")
		if confIdStr == "" {
			log.Error("conference id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("conference id is required"))
			return
		}

		conferenceID, err := strconv.Atoi(confIdStr)
		if err != nil {
			log.Error("invalid conference id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid conference id format"))
			return
		}

		log = log.With(slog.Int("conference_id", conferenceID))

		conference, err := info.GetConference(r.Context(), conferenceID)
		if err != nil {
			log.Error("failed to get conference information", sl.Err(err))

			if errors.Is(err, storage.ErrConferenceNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("conference not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get conference information"))
			return
		}

		spotsLeft, err := spots.SpotsLeft(r.Context(), conferenceID)
		if err != nil {
			log.Error("failed to count spots left", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get conference information"))
			return
		}

		log.Info("conference info successfully received", slog.Int("spots_left", spotsLeft))

		responseOK(w, r, conference, spotsLeft)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, conference *models.Conference, spotsLeft int) {
	render.JSON(w, r, ConferenceInfoResponse{
		Response:   response.OK(),
		Conference: conference,
		SpotsLeft:  spotsLeft,
	})
}
