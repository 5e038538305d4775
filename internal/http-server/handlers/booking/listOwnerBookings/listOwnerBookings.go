package listOwnerBookings

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

	"github.com/go-chi/render"
)

type ListResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=OwnerBookingLister
type OwnerBookingLister interface {
	ListForOwner(ownerID int64, f booking.Filter) ([]models.Booking, error)
	ListForOwnerPage(ownerID int64, from, size int) ([]models.Booking, error)
}

// New lists bookings on items the requester owns. Paged and state-filtered
// modes are mutually exclusive, as in listBookings.
func New(log *slog.Logger, bookings OwnerBookingLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listOwnerBookings.New"

		log = log.With(slog.String("op", op))

		ownerID, err := strconv.ParseInt(r.Header.Get("X-Sharer-User-Id"), 10, 64)
		if err != nil {
			log.Error("invalid requester id header", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid X-Sharer-User-Id header"))
			return
		}

		log = log.With(slog.Int64("owner_id", ownerID))

		var res []models.Booking

		fromStr := r.URL.Query().Get("from")
		sizeStr := r.URL.Query().Get("size")

		if fromStr != "" || sizeStr != "" {
			var from, size int

			from, err = strconv.Atoi(fromStr)
			if err == nil {
				size, err = strconv.Atoi(sizeStr)
			}
			if err != nil {
				log.Error("invalid paging parameters", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page parameters"))
				return
			}

			res, err = bookings.ListForOwnerPage(ownerID, from, size)
		} else {
			state := r.URL.Query().Get("state")
			if state == "" {
				state = "ALL"
			}

			var f booking.Filter
			f, err = booking.ParseFilter(state)
			if err != nil {
				log.Error("unsupported state", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("unsupported state"))
				return
			}

			res, err = bookings.ListForOwner(ownerID, f)
		}

		if err != nil {
			log.Error("failed to list owner bookings", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrUserNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, booking.ErrInvalidPage):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid page parameters"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to list bookings"))
			}
			return
		}

		log.Info("owner bookings listed", slog.Int("count", len(res)))

		responseOK(w, r, res)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, bookings []models.Booking) {
	render.JSON(w, r, ListResponse{
		Response: response.OK(),
		Bookings: bookings,
	})
}
