package createBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"shareBooker/internal/booking"
	"shareBooker/internal/lib/api/response"
	"shareBooker/internal/lib/logger/sl"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type BookingRequest struct {
	ItemID int64     `json:"item_id" validate:"required"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required"`
}

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(itemID int64, start, end time.Time, bookerID int64) (models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		bookerID, err := strconv.ParseInt(r.Header.Get("X-Sharer-User-Id"), 10, 64)
		if err != nil {
			log.Error("invalid requester id header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid X-Sharer-User-Id header"))
			return
		}

		log = log.With(slog.Int64("booker_id", bookerID))

		var req BookingRequest

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

		created, err := bookings.CreateBooking(req.ItemID, req.Start, req.End, bookerID)
		if err != nil {
			log.Error("failed to create booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrItemNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
			case errors.Is(err, booking.ErrSelfBooking):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("cannot book your own item"))
			case errors.Is(err, booking.ErrIncorrectBooking):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("incorrect booking"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create booking"))
			}
			return
		}

		log.Info("booking created", slog.Int64("booking_id", created.ID))

		responseOK(w, r, created)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
