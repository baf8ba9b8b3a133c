package application

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "rentloo/contexts/rental-marketplace/wishlist-service/domain/errors"
	"rentloo/contexts/rental-marketplace/wishlist-service/ports"
)

type Service struct {
	Wishlist ports.WishlistRepository
	Logger   *slog.Logger
}

// Save adds a listing to the wishlist. Saving an already-saved listing is a
// successful no-op.
func (s Service) Save(ctx context.Context, listingID string) error {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Wishlist.Save(ctx, listingID); err != nil {
		return err
	}
	s.logger().Info("listing saved to wishlist",
		"event", "wishlist_saved",
		"module", "rental-marketplace/wishlist-service",
		"layer", "application",
		"listing_id", listingID,
	)
	return nil
}

// Unsave removes a listing from the wishlist; unknown ids are a no-op.
func (s Service) Unsave(ctx context.Context, listingID string) error {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return domainerrors.ErrInvalidRequest
	}
	return s.Wishlist.Unsave(ctx, listingID)
}

// Toggle flips a listing's saved state and reports the new state.
func (s Service) Toggle(ctx context.Context, listingID string) (bool, error) {
	saved, err := s.Contains(ctx, listingID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.Unsave(ctx, listingID)
	}
	return true, s.Save(ctx, listingID)
}

func (s Service) Contains(ctx context.Context, listingID string) (bool, error) {
	listingID = strings.TrimSpace(listingID)
	if listingID == "" {
		return false, domainerrors.ErrInvalidRequest
	}
	saved, err := s.Wishlist.ListSaved(ctx)
	if err != nil {
		return false, err
	}
	for _, id := range saved {
		if id == listingID {
			return true, nil
		}
	}
	return false, nil
}

func (s Service) ListSaved(ctx context.Context) ([]string, error) {
	return s.Wishlist.ListSaved(ctx)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
