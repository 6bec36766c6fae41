package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
)

type interactionService struct {
	interactions repository.InteractionRepo
	uow          db.UnitOfWork
}

func NewInteractionService(interactions repository.InteractionRepo, uow db.UnitOfWork) InteractionService {
	return &interactionService{interactions: interactions, uow: uow}
}

func (s *interactionService) LogConversation(ctx context.Context, in ConversationInput) (*domain.Interaction, error) {
	now := time.Now().UTC()
	ts := now
	if in.Timestamp != nil {
		ts = in.Timestamp.UTC()
		if err := domain.ValidateTimestamp(ts, now); err != nil {
			return nil, err
		}
	}

	rec := &domain.Interaction{
		ID:          uuid.New().String(),
		Type:        domain.InteractionConversation,
		Engaged:     true,
		StaffDevice: in.StaffDevice,
		Persona:     &in.Persona,
		Hook:        &in.Hook,
		SaleType:    &in.SaleType,
		Notes:       in.Notes,
		Timestamp:   ts,
	}

	switch in.SaleType {
	case domain.SaleSingle:
		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		if !domain.ValidUnitPrice(in.UnitPrice) {
			return nil, fmt.Errorf("unit price must be %d or %d", domain.PriceSale, domain.PriceSticker)
		}
		total := domain.DeriveTotal(in.SaleType, qty, in.UnitPrice)
		rec.Quantity = &qty
		rec.UnitPrice = &in.UnitPrice
		rec.Total = &total
		rec.LeadType = in.LeadType
	case domain.SaleBundle3, domain.SaleFullYear:
		total := domain.DeriveTotal(in.SaleType, 0, 0)
		rec.Total = &total
		rec.LeadType = in.LeadType
	case domain.SaleNone:
		rec.Objection = in.Objection
		rec.LeadType = in.LeadType
	default:
		return nil, fmt.Errorf("invalid sale type %q", in.SaleType)
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}

	// The active seller is read and stamped in the same transaction as the
	// insert so a concurrent handoff cannot misattribute the record.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStaff := repository.NewSQLiteStaffRepo(tx)
		txInteractions := repository.NewSQLiteInteractionRepo(tx)

		// An unregistered device still logs, but a real lookup failure
		// aborts the transaction.
		staff, err := txStaff.GetByDevice(ctx, in.StaffDevice)
		switch {
		case err == nil:
			rec.SellerID = staff.ActiveSeller
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		return txInteractions.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *interactionService) LogWalkBy(ctx context.Context, staffDevice string, at *time.Time) (*domain.Interaction, error) {
	now := time.Now().UTC()
	ts := now
	if at != nil {
		ts = at.UTC()
		if err := domain.ValidateTimestamp(ts, now); err != nil {
			return nil, err
		}
	}

	rec := &domain.Interaction{
		ID:          uuid.New().String(),
		Type:        domain.InteractionWalkBy,
		Engaged:     false,
		StaffDevice: staffDevice,
		Timestamp:   ts,
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txStaff := repository.NewSQLiteStaffRepo(tx)
		txInteractions := repository.NewSQLiteInteractionRepo(tx)

		staff, err := txStaff.GetByDevice(ctx, staffDevice)
		switch {
		case err == nil:
			rec.SellerID = staff.ActiveSeller
		case !errors.Is(err, repository.ErrNotFound):
			return err
		}

		return txInteractions.Create(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *interactionService) GetByID(ctx context.Context, id string) (*domain.Interaction, error) {
	return s.interactions.GetByID(ctx, id)
}

func (s *interactionService) Browse(ctx context.Context, f repository.InteractionFilter) ([]*domain.Interaction, error) {
	return s.interactions.List(ctx, f)
}

func (s *interactionService) UpdateNotes(ctx context.Context, id, notes string) error {
	rec, err := s.interactions.GetByID(ctx, id)
	if err != nil {
		return err
	}
	rec.Notes = notes
	return s.interactions.Update(ctx, rec)
}

func (s *interactionService) Trash(ctx context.Context, id string) error {
	return s.interactions.SoftDelete(ctx, id)
}

func (s *interactionService) ListTrash(ctx context.Context) ([]*domain.Interaction, error) {
	return s.interactions.ListTrash(ctx)
}

func (s *interactionService) Restore(ctx context.Context, id string) error {
	return s.interactions.Restore(ctx, id)
}

func (s *interactionService) Purge(ctx context.Context, id string) error {
	return s.interactions.Purge(ctx, id)
}

func (s *interactionService) EmptyTrash(ctx context.Context) (int, error) {
	return s.interactions.PurgeTrash(ctx)
}
