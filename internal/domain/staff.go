package domain

import "time"

// Staff is a registered logging device (one per tablet/phone at the booth).
// ActiveSeller binds the device to the seller currently using it.
type Staff struct {
	DeviceName   string
	DisplayName  string
	ActiveSeller *string
	CreatedAt    time.Time
}
