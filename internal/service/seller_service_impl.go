package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lumicello/boothlog/internal/domain"
	"github.com/lumicello/boothlog/internal/repository"
)

type sellerService struct {
	sellers repository.SellerRepo
}

func NewSellerService(sellers repository.SellerRepo) SellerService {
	return &sellerService{sellers: sellers}
}

func (s *sellerService) Add(ctx context.Context, displayName string) (*domain.Seller, error) {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, fmt.Errorf("seller name cannot be empty")
	}
	id := domain.SellerIDFromName(displayName)
	if id == "" {
		return nil, fmt.Errorf("seller name %q yields an empty identifier", displayName)
	}

	// Re-adding a known seller reactivates them instead of failing.
	existing, err := s.sellers.GetByID(ctx, id)
	if err == nil {
		if !existing.IsActive {
			if err := s.sellers.SetActive(ctx, id, true); err != nil {
				return nil, err
			}
			existing.IsActive = true
		}
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	seller := &domain.Seller{
		ID:          id,
		DisplayName: displayName,
		IsActive:    true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sellers.Create(ctx, seller); err != nil {
		return nil, err
	}
	return seller, nil
}

func (s *sellerService) List(ctx context.Context, includeInactive bool) ([]*domain.Seller, error) {
	return s.sellers.List(ctx, includeInactive)
}

func (s *sellerService) Rename(ctx context.Context, id, displayName string) error {
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return fmt.Errorf("seller name cannot be empty")
	}
	return s.sellers.UpdateDisplayName(ctx, id, displayName)
}

func (s *sellerService) Deactivate(ctx context.Context, id string) error {
	return s.sellers.SetActive(ctx, id, false)
}
