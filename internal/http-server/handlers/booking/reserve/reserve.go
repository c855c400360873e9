package reserve

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

const defaultMethod = "credit_card"

type ReserveRequest struct {
	UserId        string `json:"user_id" validate:"required"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

type ReserveResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SeatReserver
type SeatReserver interface {
	Reserve(ctx context.Context, userID string, conferenceID int, method string) (*models.Booking, error)
}

func New(log *slog.Logger, booking SeatReserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.reserve.New"

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

		var req ReserveRequest

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

		method := req.PaymentMethod
		if method == "" {
			method = defaultMethod
		}

		result, err := booking.Reserve(r.Context(), req.UserId, conferenceID, method)
		if err != nil {
			log.Error("failed to reserve seat", sl.Err(err))

			switch {
			case errors.Is(err, ledger.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("conference not found"))
			case errors.Is(err, ledger.ErrAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("you have already booked this conference"))
			case errors.Is(err, ledger.ErrAtCapacity):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("this conference is at full capacity"))
			case errors.Is(err, ledger.ErrPaymentFailed):
				render.Status(r, http.StatusPaymentRequired)
				render.JSON(w, r, response.Error("payment failed"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to reserve seat"))
			}
			return
		}

		log.Info("seat reserved", slog.String("user_id", req.UserId), slog.Int("booking_id", result.ID))

		responseOK(w, r, result)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, ReserveResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
