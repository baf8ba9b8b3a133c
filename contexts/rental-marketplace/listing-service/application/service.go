package application

import (
	"context"
	"log/slog"
	"strings"

	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/listing-service/domain/errors"
	"rentloo/contexts/rental-marketplace/listing-service/ports"
)

// Service owns catalog use cases: CRUD plus category and text search reads.
type Service struct {
	Listings ports.ListingRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Logger   *slog.Logger
}

type CreateListingInput struct {
	Title              string
	Image              string
	Images             []string
	PricePerDay        float64
	Currency           string
	Location           string
	OwnerName          string
	OwnerAvatar        string
	Description        string
	Category           string
	CancellationPolicy entities.CancellationPolicy
}

func (s Service) CreateListing(ctx context.Context, input CreateListingInput) (entities.Listing, error) {
	if strings.TrimSpace(input.Title) == "" || input.PricePerDay <= 0 {
		return entities.Listing{}, domainerrors.ErrInvalidRequest
	}

	id, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Listing{}, err
	}
	currency := input.Currency
	if currency == "" {
		currency = "₹"
	}
	policy := input.CancellationPolicy
	if policy == "" {
		policy = entities.CancellationFlexible
	}

	listing := entities.Listing{
		ID:                 id,
		Title:              strings.TrimSpace(input.Title),
		Image:              input.Image,
		Images:             input.Images,
		PricePerDay:        input.PricePerDay,
		Currency:           currency,
		Location:           strings.TrimSpace(input.Location),
		OwnerName:          strings.TrimSpace(input.OwnerName),
		OwnerAvatar:        input.OwnerAvatar,
		Description:        input.Description,
		Category:           strings.TrimSpace(input.Category),
		CancellationPolicy: policy,
		CreatedAt:          s.Clock.Now(),
	}
	created, err := s.Listings.CreateListing(ctx, listing)
	if err != nil {
		return entities.Listing{}, err
	}
	s.logger().Info("listing created",
		"event", "listing_created",
		"module", "rental-marketplace/listing-service",
		"layer", "application",
		"listing_id", created.ID,
		"category", created.Category,
	)
	return created, nil
}

func (s Service) GetListing(ctx context.Context, id string) (entities.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Listing{}, domainerrors.ErrInvalidRequest
	}
	return s.Listings.GetListing(ctx, id)
}

func (s Service) UpdateListing(ctx context.Context, id string, update ports.UpdateListingInput) (entities.Listing, error) {
	if strings.TrimSpace(id) == "" {
		return entities.Listing{}, domainerrors.ErrInvalidRequest
	}
	updated, err := s.Listings.UpdateListing(ctx, id, update)
	if err != nil {
		return entities.Listing{}, err
	}
	s.logger().Info("listing updated",
		"event", "listing_updated",
		"module", "rental-marketplace/listing-service",
		"layer", "application",
		"listing_id", id,
	)
	return updated, nil
}

func (s Service) DeleteListing(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return domainerrors.ErrInvalidRequest
	}
	if err := s.Listings.DeleteListing(ctx, id); err != nil {
		return err
	}
	s.logger().Info("listing deleted",
		"event", "listing_deleted",
		"module", "rental-marketplace/listing-service",
		"layer", "application",
		"listing_id", id,
	)
	return nil
}

func (s Service) ListListings(ctx context.Context) ([]entities.Listing, error) {
	return s.Listings.ListListings(ctx)
}

// SearchListings filters by free-text query (title, location, category) and
// an optional category slug. Both filters are case-insensitive; empty
// filters match everything.
func (s Service) SearchListings(ctx context.Context, query string, category string) ([]entities.Listing, error) {
	listings, err := s.Listings.ListListings(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))

	matches := make([]entities.Listing, 0, len(listings))
	for _, listing := range listings {
		if category != "" && strings.ToLower(listing.Category) != category {
			continue
		}
		if query != "" && !matchesQuery(listing, query) {
			continue
		}
		matches = append(matches, listing)
	}
	return matches, nil
}

// PopularListings returns the subset flagged as popular, in catalog order.
func (s Service) PopularListings(ctx context.Context) ([]entities.Listing, error) {
	listings, err := s.Listings.ListListings(ctx)
	if err != nil {
		return nil, err
	}
	popular := make([]entities.Listing, 0, len(listings))
	for _, listing := range listings {
		if listing.IsPopular {
			popular = append(popular, listing)
		}
	}
	return popular, nil
}

func (s Service) Categories() []entities.Category {
	return entities.DefaultCategories()
}

func matchesQuery(listing entities.Listing, query string) bool {
	return strings.Contains(strings.ToLower(listing.Title), query) ||
		strings.Contains(strings.ToLower(listing.Location), query) ||
		strings.Contains(strings.ToLower(listing.Category), query)
}

func (s Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}
