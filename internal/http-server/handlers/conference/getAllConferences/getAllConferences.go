package getAllConferences

import (
	"context"
	"log/slog"
	"net/http"

	"confBooker/internal/lib/api/response"
	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/models"

	"github.com/go-chi/render"
)

type ConferencesResponse struct {
	response.Response
	Conferences []models.Conference `json:"conferences"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConferencesGetter
type ConferencesGetter interface {
	GetAllConferences(ctx context.Context) ([]models.Conference, error)
}

func New(log *slog.Logger, conferencesGetter ConferencesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conference.getAllConferences.New"

		log = log.With(slog.String("op", op))

		conferences, err := conferencesGetter.GetAllConferences(r.Context())
		if err != nil {
			log.Error("failed to get conferences", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get conferences"))
			return
		}

		log.Info("conferences retrieved successfully", slog.Int("count", len(conferences)))

		responseOK(w, r, conferences)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, conferences []models.Conference) {
	render.JSON(w, r, ConferencesResponse{
		Response:    response.OK(),
		Conferences: conferences,
	})
}
