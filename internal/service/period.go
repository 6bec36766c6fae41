package service

import (
	"time"

	"github.com/lumicello/boothlog/internal/domain"
)

// periodStart resolves a period name to its lower time bound. A nil result
// means unbounded ("all").
func periodStart(period domain.Period, now time.Time) *time.Time {
	switch period {
	case domain.PeriodToday:
		midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &midnight
	case domain.PeriodWeek:
		weekAgo := now.AddDate(0, 0, -7)
		return &weekAgo
	default:
		return nil
	}
}
