package createConference

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"confBooker/internal/lib/api/response"
	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type ConferenceRequest struct {
	Topic       string          `json:"topic" validate:"required"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date" validate:"required"`
	TimeStart   string          `json:"time_start" validate:"required"`
	TimeEnd     string          `json:"time_end" validate:"required"`
	Capacity    int             `json:"capacity" validate:"required,gt=0"`
	Price       decimal.Decimal `json:"price"`
}

type ConferenceResponse struct {
	response.Response
	ConferenceId int `json:"conference_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ConferenceCreator
type ConferenceCreator interface {
	CreateConference(ctx context.Context, conf *models.Conference) (int, error)
}

func New(log *slog.Logger, conference ConferenceCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.conference.createConference.New"

		log = log.With(
			slog.String("op", op),
		)

		var req ConferenceRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		if req.Price.IsNegative() {
			log.Error("negative price rejected")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("price must not be negative"))

			return
		}

		conferenceId, err := conference.CreateConference(r.Context(), &models.Conference{
			Topic:       req.Topic,
			Description: req.Description,
			Date:        req.Date,
			TimeStart:   req.TimeStart,
			TimeEnd:     req.TimeEnd,
			Capacity:    req.Capacity,
			Price:       req.Price,
		})
		if err != nil {
			log.Error("failed to add conference", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add conference"))

			return
		}

		log.Info("conference added", slog.Int("id", conferenceId))

		responseOK(w, r, conferenceId)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, conferenceId int) {
	render.JSON(w, r, ConferenceResponse{
		Response:     response.OK(),
		ConferenceId: conferenceId,
	})
}
