package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lumicello/boothlog/internal/db"
	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
)

type sessionService struct {
	staff   repository.StaffRepo
	sellers repository.SellerRepo
	uow     db.UnitOfWork
}

func NewSessionService(staff repository.StaffRepo, sellers repository.SellerRepo, uow db.UnitOfWork) SessionService {
	return &sessionService{staff: staff, sellers: sellers, uow: uow}
}

func (s *sessionService) RegisterDevice(ctx context.Context, deviceName, displayName string) (*domain.Staff, error) {
	if deviceName == "" {
		return nil, fmt.Errorf("device name cannot be empty")
	}
	if displayName == "" {
		displayName = deviceName
	}
	staff := &domain.Staff{
		DeviceName:  deviceName,
		DisplayName: displayName,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.staff.Upsert(ctx, staff); err != nil {
		return nil, err
	}
	return s.staff.GetByDevice(ctx, deviceName)
}

func (s *sessionService) SetActiveSeller(ctx context.Context, deviceName, sellerID string) error {
	// Seller existence and the binding update share one transaction.
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txSellers := repository.NewSQLiteSellerRepo(tx)
		txStaff := repository.NewSQLiteStaffRepo(tx)

		seller, err := txSellers.GetByID(ctx, sellerID)
		if err != nil {
			return err
		}
		if !seller.IsActive {
			return fmt.Errorf("seller %q is inactive", sellerID)
		}
		return txStaff.SetActiveSeller(ctx, deviceName, &sellerID)
	})
}

func (s *sessionService) ClearActiveSeller(ctx context.Context, deviceName string) error {
	return s.staff.SetActiveSeller(ctx, deviceName, nil)
}

func (s *sessionService) ActiveSeller(ctx context.Context, deviceName string) (*domain.Seller, error) {
	staff, err := s.staff.GetByDevice(ctx, deviceName)
	if err != nil {
		return nil, err
	}
	if staff.ActiveSeller == nil {
		return nil, fmt.Errorf("no active seller: %w", repository.ErrNotFound)
	}
	return s.sellers.GetByID(ctx, *staff.ActiveSeller)
}
