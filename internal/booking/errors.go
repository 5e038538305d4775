package booking

import "errors"

var (
	ErrSelfBooking = errors.New("cannot book your own item")

	// ErrIncorrectBooking wraps the first failing time-window or availability
	// check of CreateBooking.
	ErrIncorrectBooking = errors.New("incorrect booking")

	ErrNotAuthorized     = errors.New("not available for this user")
	ErrAlreadyDecided    = errors.New("booking status already decided")
	ErrUnsupportedFilter = errors.New("unsupported state")
	ErrInvalidPage       = errors.New("invalid page parameters")
)

// Causes wrapped under ErrIncorrectBooking, in check order.
var (
	errEndBeforeStart  = errors.New("end is before start")
	errEndInPast       = errors.New("end is in the past")
	errStartEqualsEnd  = errors.New("start equals end")
	errStartInPast     = errors.New("start is in the past")
	errItemUnavailable = errors.New("item is not available")
)
