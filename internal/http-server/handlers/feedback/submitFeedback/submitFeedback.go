package submitFeedback

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"confBooker/internal/ledger"
	"confBooker/internal/lib/api/response"
	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type FeedbackRequest struct {
	UserId   string `json:"user_id" validate:"required"`
	Rating   int    `json:"rating" validate:"required"`
	Comments string `json:"comments,omitempty"`
}

type FeedbackResponse struct {
	response.Response
	Feedback *models.Feedback `json:"feedback,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FeedbackSubmitter
type FeedbackSubmitter interface {
	SubmitFeedback(ctx context.Context, userID string, conferenceID, rating int, comments string) (*models.Feedback, error)
}

func New(log *slog.Logger, feedback FeedbackSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.feedback.submitFeedback.New"

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

		var req FeedbackRequest

		err = render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		result, err := feedback.SubmitFeedback(r.Context(), req.UserId, conferenceID, req.Rating, req.Comments)
		if err != nil {
			log.Error("failed to submit feedback", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrInvalidRating):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("rating must be between 1 and 5"))
			case errors.Is(err, ledger.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("conference not found"))
			case errors.Is(err, ledger.ErrNotBooked):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("you have not booked this conference"))
			case errors.Is(err, ledger.ErrDuplicateFeedback):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you have already provided feedback for this conference"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to submit feedback"))
			}
			return
		}

		log.Info("feedback submitted", slog.String("user_id", req.UserId), slog.Int("rating", req.Rating))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, feedback *models.Feedback) {
	render.JSON(w, r, FeedbackResponse{
		Response: response.OK(),
		Feedback: feedback,
	})
}
