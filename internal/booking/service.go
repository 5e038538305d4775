package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"shareBooker/internal/lib/logger/sl"
	"shareBooker/internal/models"
	"shareBooker/internal/storage"
)

// Service is the reservation lifecycle and authorization engine. Every
// operation runs to completion on the calling goroutine; the only blocking
// points are the directory and store calls.
type Service struct {
	log      *slog.Logger
	bookings storage.Bookings
	dir      storage.Directory
	now      func() time.Time
}

func New(log *slog.Logger, bookings storage.Bookings, dir storage.Directory) *Service {
	return &Service{
		log:      log,
		bookings: bookings,
		dir:      dir,
		now:      time.Now,
	}
}

// CreateBooking validates and persists a new reservation with status WAITING.
// Time windows of different bookings for the same item are allowed to
// overlap; conflict detection is left to the owner deciding them.
func (s *Service) CreateBooking(itemID int64, start, end time.Time, bookerID int64) (models.Booking, error) {
	const op = "booking.CreateBooking"

	log := s.log.With(slog.String("op", op), slog.Int64("item_id", itemID), slog.Int64("booker_id", bookerID))

	booker, err := s.dir.UserByID(bookerID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	item, err := s.dir.ItemByID(itemID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if item.OwnerID == booker.ID {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrSelfBooking)
	}

	if cause := checkBooking(start, end, item, s.now()); cause != nil {
		return models.Booking{}, fmt.Errorf("%s: %w: %w", op, ErrIncorrectBooking, cause)
	}

	saved, err := s.bookings.Save(models.Booking{
		Start:  start,
		End:    end,
		Item:   item,
		Booker: booker,
		Status: models.StatusWaiting,
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking created", slog.Int64("booking_id", saved.ID))

	return saved, nil
}

// checkBooking returns the first failing time-window or availability check.
// All checks are evaluated against the same instant.
func checkBooking(start, end time.Time, item models.Item, now time.Time) error {
	switch {
	case end.Before(start):
		return errEndBeforeStart
	case end.Before(now):
		return errEndInPast
	case start.Equal(end):
		return errStartEqualsEnd
	case start.Before(now):
		return errStartInPast
	case !item.Available:
		return errItemUnavailable
	}

	return nil
}

// DecideBooking moves a WAITING booking to APPROVED or REJECTED. Only the
// owner of the booked item may decide, the transition happens at most once,
// and the write is guarded by the expected prior status so that of two
// concurrent deciders exactly one succeeds.
func (s *Service) DecideBooking(requesterID int64, approve bool, bookingID int64) (models.Booking, error) {
	const op = "booking.DecideBooking"

	log := s.log.With(slog.String("op", op), slog.Int64("booking_id", bookingID), slog.Int64("requester_id", requesterID))

	b, err := s.bookings.ByID(bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if b.Item.OwnerID != requesterID || b.Booker.ID == requesterID {
		return models.Booking{}, fmt.Errorf("%s: only the item owner may decide: %w", op, ErrNotAuthorized)
	}

	if b.Status != models.StatusWaiting {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrAlreadyDecided)
	}

	to := models.StatusRejected
	if approve {
		to = models.StatusApproved
	}

	updated, err := s.bookings.UpdateStatus(bookingID, models.StatusWaiting, to)
	if err != nil {
		if errors.Is(err, storage.ErrStatusChanged) {
			log.Warn("lost status transition race", sl.Err(err))
			return models.Booking{}, fmt.Errorf("%s: %w", op, ErrAlreadyDecided)
		}
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("booking decided", slog.String("status", string(updated.Status)))

	return updated, nil
}

// GetBooking returns the booking iff the requester is its booker or owns the
// booked item. Other users get ErrNotAuthorized, not a not-found.
func (s *Service) GetBooking(bookingID, requesterID int64) (models.Booking, error) {
	const op = "booking.GetBooking"

	b, err := s.bookings.ByID(bookingID)
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if b.Booker.ID != requesterID && b.Item.OwnerID != requesterID {
		return models.Booking{}, fmt.Errorf("%s: %w", op, ErrNotAuthorized)
	}

	return b, nil
}

// ListForUser returns the user's own bookings that match the filter, newest
// start first.
func (s *Service) ListForUser(userID int64, f Filter) ([]models.Booking, error) {
	const op = "booking.ListForUser"

	if _, err := s.dir.UserByID(userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	all, err := s.bookings.ByBooker(userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return filterAndSort(all, f, s.now()), nil
}

// ListForOwner returns bookings on items owned by the user that match the
// filter, newest start first.
func (s *Service) ListForOwner(ownerID int64, f Filter) ([]models.Booking, error) {
	const op = "booking.ListForOwner"

	if _, err := s.dir.UserByID(ownerID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	all, err := s.bookings.ByOwnedItems(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return filterAndSort(all, f, s.now()), nil
}

// ListForUserPage returns one page of the user's bookings, ordered by start
// descending by the store. The paged path applies no filter category; it is
// a separate mode from ListForUser, not a refinement of it.
func (s *Service) ListForUserPage(userID int64, from, size int) ([]models.Booking, error) {
	const op = "booking.ListForUserPage"

	page, err := pageNumber(from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.dir.UserByID(userID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.bookings.PageByBooker(userID, page, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

// ListForOwnerPage is the owner-scoped variant of ListForUserPage.
func (s *Service) ListForOwnerPage(ownerID int64, from, size int) ([]models.Booking, error) {
	const op = "booking.ListForOwnerPage"

	page, err := pageNumber(from, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.dir.UserByID(ownerID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.bookings.PageByOwnedItems(ownerID, page, size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func pageNumber(from, size int) (int, error) {
	if from < 0 || size <= 0 {
		return 0, fmt.Errorf("%w: from=%d size=%d", ErrInvalidPage, from, size)
	}

	return from / size, nil
}

func filterAndSort(all []models.Booking, f Filter, now time.Time) []models.Booking {
	res := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if f.matches(b, now) {
			res = append(res, b)
		}
	}

	sort.Slice(res, func(i, j int) bool {
		return res[i].Start.After(res[j].Start)
	})

	return res
}

// Annotate fills the item's last and next booking slots from a single
// unordered pass over its bookings. Only APPROVED bookings count: last is
// the latest start strictly before now, next the earliest start strictly
// after now. A booking starting exactly now lands in neither slot.
func (s *Service) Annotate(item models.Item) (models.AnnotatedItem, error) {
	const op = "booking.Annotate"

	all, err := s.bookings.ForItem(item.ID)
	if err != nil {
		return models.AnnotatedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	res := models.AnnotatedItem{Item: item}
	now := s.now()

	for _, b := range all {
		if b.Status != models.StatusApproved {
			continue
		}

		switch {
		case b.Start.Before(now):
			if res.LastBooking == nil || b.Start.After(res.LastBooking.Start) {
				res.LastBooking = shortOf(b)
			}
		case b.Start.After(now):
			if res.NextBooking == nil || b.Start.Before(res.NextBooking.Start) {
				res.NextBooking = shortOf(b)
			}
		}
	}

	return res, nil
}

// AnnotatedItem looks the item up and annotates it, for the item detail view.
func (s *Service) AnnotatedItem(itemID int64) (models.AnnotatedItem, error) {
	const op = "booking.AnnotatedItem"

	item, err := s.dir.ItemByID(itemID)
	if err != nil {
		return models.AnnotatedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.Annotate(item)
	if err != nil {
		return models.AnnotatedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return res, nil
}

func shortOf(b models.Booking) *models.BookingShort {
	return &models.BookingShort{
		ID:       b.ID,
		BookerID: b.Booker.ID,
		Start:    b.Start,
		End:      b.End,
	}
}
