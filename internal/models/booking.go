package models

import "time"

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

type Booking struct {
	ID     int64     `json:"id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Item   Item      `json:"item"`
	Booker User      `json:"booker"`
	Status Status    `json:"status"`
}

// BookingShort is the projection used for the last/next booking slots of an
// annotated item.
type BookingShort struct {
	ID       int64     `json:"id"`
	BookerID int64     `json:"booker_id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}
