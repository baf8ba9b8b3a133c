package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/listing-service/domain/errors"
	"rentloo/contexts/rental-marketplace/listing-service/ports"

	"github.com/google/uuid"
)

// Store keeps the catalog newest-first in a slice, matching the prepend
// semantics of the snapshot-backed adapter.
type Store struct {
	mu       sync.RWMutex
	listings []entities.Listing
}

func NewStore(seed []entities.Listing) *Store {
	listings := make([]entities.Listing, len(seed))
	copy(listings, seed)
	return &Store{listings: listings}
}

func (s *Store) ListListings(_ context.Context) ([]entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]entities.Listing, len(s.listings))
	copy(items, s.listings)
	return items, nil
}

func (s *Store) GetListing(_ context.Context, id string) (entities.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index := indexOf(s.listings, id); index >= 0 {
		return s.listings[index], nil
	}
	return entities.Listing{}, domainerrors.ErrListingNotFound
}

func (s *Store) CreateListing(_ context.Context, listing entities.Listing) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if strings.TrimSpace(listing.ID) == "" {
		listing.ID = uuid.NewString()
	}
	s.listings = append([]entities.Listing{listing}, s.listings...)
	return listing, nil
}

func (s *Store) UpdateListing(_ context.Context, id string, update ports.UpdateListingInput) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := indexOf(s.listings, id)
	if index < 0 {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	s.listings[index] = ApplyUpdate(s.listings[index], update)
	return s.listings[index], nil
}

func (s *Store) DeleteListing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := indexOf(s.listings, id)
	if index < 0 {
		return nil
	}
	s.listings = append(s.listings[:index], s.listings[index+1:]...)
	return nil
}

// ApplyUpdate merges a partial update into a listing; shared with the local
// snapshot adapter so both backends patch identically.
func ApplyUpdate(listing entities.Listing, update ports.UpdateListingInput) entities.Listing {
	if update.Title != nil {
		listing.Title = *update.Title
	}
	if update.Image != nil {
		listing.Image = *update.Image
	}
	if update.Images != nil {
		listing.Images = *update.Images
	}
	if update.PricePerDay != nil {
		listing.PricePerDay = *update.PricePerDay
	}
	if update.Location != nil {
		listing.Location = *update.Location
	}
	if update.Description != nil {
		listing.Description = *update.Description
	}
	if update.Category != nil {
		listing.Category = *update.Category
	}
	if update.CancellationPolicy != nil {
		listing.CancellationPolicy = *update.CancellationPolicy
	}
	if update.IsPopular != nil {
		listing.IsPopular = *update.IsPopular
	}
	return listing
}

func indexOf(listings []entities.Listing, id string) int {
	id = strings.TrimSpace(id)
	for index, listing := range listings {
		if listing.ID == id {
			return index
		}
	}
	return -1
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.ListingRepository = (*Store)(nil)
var _ ports.Clock = SystemClock{}
var _ ports.IDGenerator = UUIDGenerator{}
