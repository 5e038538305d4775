package booking

import (
	"fmt"
	"strings"
	"time"

	"shareBooker/internal/models"
)

// Filter is a derived, never persisted classification of bookings by time or
// status, used by the listing views.
type Filter int

const (
	FilterAll Filter = iota
	FilterCurrent
	FilterFuture
	FilterPast
	FilterWaiting
	FilterRejected
	FilterApproved
)

// ParseFilter accepts the seven filter tokens case-insensitively. Anything
// else fails with ErrUnsupportedFilter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToUpper(s) {
	case "ALL":
		return FilterAll, nil
	case "CURRENT":
		return FilterCurrent, nil
	case "FUTURE":
		return FilterFuture, nil
	case "PAST":
		return FilterPast, nil
	case "WAITING":
		return FilterWaiting, nil
	case "REJECTED":
		return FilterRejected, nil
	case "APPROVED":
		return FilterApproved, nil
	default:
		return FilterAll, fmt.Errorf("%w: %q", ErrUnsupportedFilter, s)
	}
}

func (f Filter) String() string {
	switch f {
	case FilterAll:
		return "ALL"
	case FilterCurrent:
		return "CURRENT"
	case FilterFuture:
		return "FUTURE"
	case FilterPast:
		return "PAST"
	case FilterWaiting:
		return "WAITING"
	case FilterRejected:
		return "REJECTED"
	case FilterApproved:
		return "APPROVED"
	default:
		return "UNKNOWN"
	}
}

// matches reports whether booking b falls into the filter category, with the
// time categories evaluated against now.
func (f Filter) matches(b models.Booking, now time.Time) bool {
	switch f {
	case FilterAll:
		return true
	case FilterCurrent:
		return !b.Start.After(now) && !b.End.Before(now)
	case FilterFuture:
		return b.Start.After(now)
	case FilterPast:
		return b.End.Before(now)
	case FilterWaiting:
		return b.Status == models.StatusWaiting
	case FilterRejected:
		return b.Status == models.StatusRejected
	case FilterApproved:
		return b.Status == models.StatusApproved
	default:
		return false
	}
}
