package service

import (
	"context"
	"testing"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_LogEvent(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	ev, err := f.events.LogEvent(ctx, "d1", "  restocked kits  ")
	require.NoError(t, err)
	assert.Equal(t, "restocked kits", ev.Description)
	assert.NotEmpty(t, ev.ID)
}

func TestEventService_LogEvent_RejectsEmptyDescription(t *testing.T) {
	f := newServiceFixture(t)

	_, err := f.events.LogEvent(context.Background(), "d1", "   ")
	assert.Error(t, err)
}

func TestEventService_TimelineMergesNewestFirst(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.interactions.LogWalkBy(ctx, "d1", nil)
	require.NoError(t, err)
	_, err = f.events.LogEvent(ctx, "d1", "rain started")
	require.NoError(t, err)
	_, err = f.interactions.LogConversation(ctx, ConversationInput{
		StaffDevice: "d1",
		Persona:     domain.PersonaParent,
		Hook:        domain.HookSignage,
		SaleType:    domain.SaleBundle3,
	})
	require.NoError(t, err)

	entries, err := f.events.Timeline(ctx, domain.PeriodToday)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i-1].Timestamp.Before(entries[i].Timestamp),
			"timeline must be ordered newest first")
	}

	var interactions, events int
	for _, e := range entries {
		if e.Interaction != nil {
			interactions++
		}
		if e.Event != nil {
			events++
		}
	}
	assert.Equal(t, 2, interactions)
	assert.Equal(t, 1, events)
}

func TestEventService_Delete(t *testing.T) {
	f := newServiceFixture(t)
	ctx := context.Background()

	ev, err := f.events.LogEvent(ctx, "d1", "booth opened")
	require.NoError(t, err)
	require.NoError(t, f.events.Delete(ctx, ev.ID))

	entries, err := f.events.Timeline(ctx, domain.PeriodAll)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
