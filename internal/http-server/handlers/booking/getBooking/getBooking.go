package getBooking

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"shareBooker/internal/booking"
	"shareBooker/internal/lib/api/response"
	"shareBooker/internal/lib/logger/sl"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type BookingResponse struct {
	response.Response
	Booking models.Booking `json:"booking"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingProvider
type BookingProvider interface {
	GetBooking(bookingID, requesterID int64) (models.Booking, error)
}

func New(log *slog.Logger, bookings BookingProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.getBooking.New"

		log = log.With(slog.String("op", op))

		requesterID, err := strconv.ParseInt(r.Header.Get("X-Sharer-User-Id"), 10, 64)
		if err != nil {
			log.Error("invalid requester id header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid X-Sharer-User-Id header"))
			return
		}

		bookingIDStr := chi.URLParam(r, "bookingId")
		if bookingIDStr == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		bookingID, err := strconv.ParseInt(bookingIDStr, 10, 64)
		if err != nil {
			log.Error("invalid booking id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid booking id format"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID))

		b, err := bookings.GetBooking(bookingID, requesterID)
		if err != nil {
			log.Error("failed to get booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrNotAuthorized):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("not available for this user"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get booking"))
			}
			return
		}

		log.Info("booking found")

		responseOK(w, r, b)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
