package getItem

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"shareBooker/internal/lib/api/response"
	"shareBooker/internal/lib/logger/sl"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type ItemResponse struct {
	response.Response
	Item models.AnnotatedItem `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ItemAnnotator
type ItemAnnotator interface {
	AnnotatedItem(itemID int64) (models.AnnotatedItem, error)
}

// New serves the item detail view, annotated with the item's most recent and
// next approved bookings.
func New(log *slog.Logger, items ItemAnnotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.item.getItem.New"

		log = log.With(slog.String("op", op))

		itemIDStr := chi.URLParam(r, "id")
		if itemIDStr == "" {
			log.Error("item id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("item id is required"))
			return
		}

		itemID, err := strconv.ParseInt(itemIDStr, 10, 64)
		if err != nil {
			log.Error("invalid item id format", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid item id format"))
			return
		}

		log = log.With(slog.Int64("item_id", itemID))

		item, err := items.AnnotatedItem(itemID)
		if err != nil {
			log.Error("failed to get item", sl.Err(err))

			if errors.Is(err, storage.ErrItemNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("item not found"))
				return
			}

			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get item"))
			return
		}

		log.Info("item found")

		responseOK(w, r, item)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, item models.AnnotatedItem) {
	render.JSON(w, r, ItemResponse{
		Response: response.OK(),
		Item:     item,
	})
}
