package storage

import (
	"errors"

	"shareBooker/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStatusChanged is returned by UpdateStatus when the persisted status
	// no longer matches the expected one, i.e. another caller won the
	// transition.
	ErrStatusChanged = errors.New("booking status already changed")
)

// Directory is the read-only lookup of users and items. The booking engine
// never mutates either.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Directory
type Directory interface {
	UserByID(id int64) (models.User, error)
	ItemByID(id int64) (models.Item, error)
	ItemsOwnedBy(userID int64) ([]models.Item, error)
}

// Bookings persists and queries booking records. Paged queries return pages
// ordered by start descending; unpaged queries make no ordering promise.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Bookings
type Bookings interface {
	Save(b models.Booking) (models.Booking, error)
	ByID(id int64) (models.Booking, error)
	ByBooker(userID int64) ([]models.Booking, error)
	ByOwnedItems(ownerID int64) ([]models.Booking, error)
	ForItem(itemID int64) ([]models.Booking, error)
	PageByBooker(userID int64, page, size int) ([]models.Booking, error)
	PageByOwnedItems(ownerID int64, page, size int) ([]models.Booking, error)

	// UpdateStatus sets the status of booking id to `to` only if it is still
	// `from`, and returns the updated record. Fails with ErrStatusChanged
	// otherwise.
	UpdateStatus(id int64, from, to models.Status) (models.Booking, error)
}
