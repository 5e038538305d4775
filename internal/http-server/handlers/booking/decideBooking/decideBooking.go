package decideBooking

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDecider
type BookingDecider interface {
	DecideBooking(requesterID int64, approve bool, bookingID int64) (models.Booking, error)
}

func New(log *slog.Logger, bookings BookingDecider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.decideBooking.New"

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

		approve, err := strconv.ParseBool(r.URL.Query().Get("approved"))
		if err != nil {
			log.Error("invalid approved parameter", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("approved parameter is required"))
			return
		}

		log = log.With(slog.Int64("booking_id", bookingID), slog.Bool("approve", approve))

		decided, err := bookings.DecideBooking(requesterID, approve, bookingID)
		if err != nil {
			log.Error("failed to decide booking", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrBookingNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("booking not found"))
			case errors.Is(err, booking.ErrNotAuthorized):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("only the item owner may decide"))
			case errors.Is(err, booking.ErrAlreadyDecided):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("booking status already decided"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to decide booking"))
			}
			return
		}

		log.Info("booking decided", slog.String("status", string(decided.Status)))

		responseOK(w, r, decided)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, b models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  b,
	})
}
