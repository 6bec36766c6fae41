package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
)

type eventService struct {
	events       repository.EventRepo
	interactions repository.InteractionRepo
	staff        repository.StaffRepo
	now          func() time.Time
}

func NewEventService(events repository.EventRepo, interactions repository.InteractionRepo, staff repository.StaffRepo) EventService {
	return &eventService{events: events, interactions: interactions, staff: staff, now: time.Now}
}

func (s *eventService) LogEvent(ctx context.Context, staffDevice, description string) (*domain.BoothEvent, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("event description cannot be empty")
	}

	ev := &domain.BoothEvent{
		ID:          uuid.New().String(),
		Description: description,
		StaffDevice: staffDevice,
		Timestamp:   s.now().UTC(),
	}
	if staff, err := s.staff.GetByDevice(ctx, staffDevice); err == nil {
		ev.SellerID = staff.ActiveSeller
	}

	if err := s.events.Create(ctx, ev); err != nil {
		return nil, err
	}
	return ev, nil
}

// Timeline merges interactions and milestone events into one feed, newest
// first.
func (s *eventService) Timeline(ctx context.Context, period domain.Period) ([]TimelineEntry, error) {
	since := periodStart(period, s.now())

	interactions, err := s.interactions.List(ctx, repository.InteractionFilter{Since: since})
	if err != nil {
		return nil, err
	}
	events, err := s.events.ListSince(ctx, since)
	if err != nil {
		return nil, err
	}

	entries := make([]TimelineEntry, 0, len(interactions)+len(events))
	for _, in := range interactions {
		entries = append(entries, TimelineEntry{Timestamp: in.Timestamp, Interaction: in})
	}
	for _, ev := range events {
		entries = append(entries, TimelineEntry{Timestamp: ev.Timestamp, Event: ev})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}
