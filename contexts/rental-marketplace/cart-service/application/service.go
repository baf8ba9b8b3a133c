package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"rentloo/contexts/rental-marketplace/cart-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/cart-service/domain/errors"
	"rentloo/contexts/rental-marketplace/cart-service/ports"
)

// Service owns the basket use cases. Pricing is fixed at add time:
// total = price per day times whole rental days.
type Service struct {
	Cart   ports.CartRepository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

// AddItemInput carries the listing snapshot plus the chosen rental window.
type AddItemInput struct {
	ListingID   string
	Title       string
	Image       string
	PricePerDay float64
	Currency    string
	Location    string
	OwnerName   string
	StartDate   time.Time
	Days        int
}

func (s Service) AddItem(ctx context.Context, input AddItemInput) (entities.CartItem, error) {
	if strings.TrimSpace(input.ListingID) == "" || input.Days <= 0 || input.PricePerDay <= 0 || input.StartDate.IsZero() {
		return entities.CartItem{}, domainerrors.ErrInvalidRequest
	}

	existing, err := s.Cart.ListItems(ctx)
	if err != nil {
		return entities.CartItem{}, err
	}
	for _, item := range existing {
		if item.ListingID == input.ListingID && item.StartDate.Equal(input.StartDate) {
			return entities.CartItem{}, domainerrors.ErrDuplicateItem
		}
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.CartItem{}, err
	}
	item := entities.CartItem{
		ID:          id,
		ListingID:   strings.TrimSpace(input.ListingID),
		Title:       input.Title,
		Image:       input.Image,
		PricePerDay: input.PricePerDay,
		Currency:    input.Currency,
		Location:    input.Location,
		OwnerName:   input.OwnerName,
		StartDate:   input.StartDate,
		EndDate:     input.StartDate.AddDate(0, 0, input.Days),
		Days:        input.Days,
		Total:       input.PricePerDay * float64(input.Days),
		AddedAt:     s.Clock.Now(),
	}
	added, err := s.Cart.AddItem(ctx, item)
	if err != nil {
		return entities.CartItem{}, err
	}
	s.logger().Info("cart item added",
		"event", "cart_item_added",
		"module", "rental-marketplace/cart-service",
		"layer", "application",
		"item_id", added.ID,
		"listing_id", added.ListingID,
		"days", added.Days,
	)
	return added, nil
}

func (s Service) RemoveItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Cart.RemoveItem(ctx, id); err != nil {
		return err
	}
	s.logger().Info("cart item removed",
		"event", "cart_item_removed",
		"module", "rental-marketplace/cart-service",
		"layer", "application",
		"item_id", id,
	)
	return nil
}

func (s Service) ListItems(ctx context.Context) ([]entities.CartItem, error) {
	return s.Cart.ListItems(ctx)
}

// Count reports how many booking lines are in the basket.
func (s Service) Count(ctx context.Context) (int, error) {
	items, err := s.Cart.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Subtotal sums the line totals of everything in the basket.
func (s Service) Subtotal(ctx context.Context) (float64, error) {
	items, err := s.Cart.ListItems(ctx)
	if err != nil {
		return 0, err
	}
	var subtotal float64
	for _, item := range items {
		subtotal += item.Total
	}
	return subtotal, nil
}

func (s Service) Clear(ctx context.Context) error {
	if err := s.Cart.Clear(ctx); err != nil {
		return err
	}
	s.logger().Info("cart cleared",
		"event", "cart_cleared",
		"module", "rental-marketplace/cart-service",
		"layer", "application",
	)
	return nil
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
