package domain

import (
	"strings"
	"time"
)

// Seller is a named person working the booth. Interactions are attributed to
// the seller active on the logging device at the time.
type Seller struct {
	ID          string
	DisplayName string
	IsActive    bool
	CreatedAt   time.Time
}

// SellerIDFromName derives a stable lowercase identifier from a display name:
// spaces become underscores, everything outside [a-z0-9_] is dropped.
func SellerIDFromName(name string) string {
	lowered := strings.ReplaceAll(strings.ToLower(name), " ", "_")
	var b strings.Builder
	for _, r := range lowered {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
