package domain

import "time"

// BoothEvent is a free-text timestamped milestone annotation, independent of
// the conversation flow ("restocked kits", "rain started", ...).
type BoothEvent struct {
	ID          string
	Description string
	StaffDevice string
	SellerID    *string
	Timestamp   time.Time
}
