package ports

import (
	"context"
	"time"

	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
)

// ListingRepository stores the catalog newest-first: Create prepends, List
// returns the stored order.
type ListingRepository interface {
	ListListings(ctx context.Context) ([]entities.Listing, error)
	GetListing(ctx context.Context, id string) (entities.Listing, error)
	CreateListing(ctx context.Context, listing entities.Listing) (entities.Listing, error)
	UpdateListing(ctx context.Context, id string, update UpdateListingInput) (entities.Listing, error)
	DeleteListing(ctx context.Context, id string) error
}

// UpdateListingInput is a partial update; nil fields keep their value.
type UpdateListingInput struct {
	Title              *string
	Image              *string
	Images             *[]string
	PricePerDay        *float64
	Location           *string
	Description        *string
	Category           *string
	CancellationPolicy *entities.CancellationPolicy
	IsPopular          *bool
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
