package cli

import (
	"context"

	"github.com/lumicello/boothlog/internal/domain"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Device identity for attribution.
	DeviceName string
	Location   string

	// Cached active seller for the header; refreshed on handoff.
	ActiveSellerID   string
	ActiveSellerName string

	// Stats period selected across views.
	Period domain.Period

	// Terminal dimensions
	Width  int
	Height int
}

// RefreshActiveSeller re-reads the device's seller binding into the cache.
func (s *SharedState) RefreshActiveSeller(ctx context.Context) {
	seller, err := s.App.Session.ActiveSeller(ctx, s.DeviceName)
	if err != nil {
		s.ActiveSellerID = ""
		s.ActiveSellerName = ""
		return
	}
	s.ActiveSellerID = seller.ID
	s.ActiveSellerName = seller.DisplayName
}

// ContentHeight returns the available height for view content, accounting
// for the header (2 lines) and the status bar (2 lines).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
