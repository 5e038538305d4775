package models

type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"owner_id"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// AnnotatedItem is an Item extended with its nearest adjoining approved
// bookings, as shown on the item detail view.
type AnnotatedItem struct {
	Item
	LastBooking *BookingShort `json:"last_booking,omitempty"`
	NextBooking *BookingShort `json:"next_booking,omitempty"`
}
