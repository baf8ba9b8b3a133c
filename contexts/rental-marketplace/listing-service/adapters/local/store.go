package local

import (
	"context"
	"strings"
	"sync"

	"rentloo/contexts/rental-marketplace/listing-service/adapters/memory"
	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/listing-service/domain/errors"
	"rentloo/contexts/rental-marketplace/listing-service/ports"
	"rentloo/internal/platform/localstore"

	"github.com/google/uuid"
)

const listingsKey = "rentloo_listings"

// Store persists the catalog as one JSON snapshot. A brand-new install (no
// snapshot file yet) starts from the provided seed; an existing snapshot is
// authoritative even when empty.
type Store struct {
	mu       sync.RWMutex
	files    *localstore.Store
	listings []entities.Listing
}

func NewStore(files *localstore.Store, seed []entities.Listing) (*Store, error) {
	s := &Store{files: files}
	found, err := files.Load(listingsKey, &s.listings)
	if err != nil {
		return nil, err
	}
	if !found {
		s.listings = make([]entities.Listing, len(seed))
		copy(s.listings, seed)
		if err := s.persist(); err != nil {
			return nil, err
		}
	}
	return s, nil
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
	if index := s.indexOf(id); index >= 0 {
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
	if err := s.persist(); err != nil {
		s.listings = s.listings[1:]
		return entities.Listing{}, err
	}
	return listing, nil
}

func (s *Store) UpdateListing(_ context.Context, id string, update ports.UpdateListingInput) (entities.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return entities.Listing{}, domainerrors.ErrListingNotFound
	}
	s.listings[index] = memory.ApplyUpdate(s.listings[index], update)
	if err := s.persist(); err != nil {
		return entities.Listing{}, err
	}
	return s.listings[index], nil
}

func (s *Store) DeleteListing(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	index := s.indexOf(id)
	if index < 0 {
		return nil
	}
	s.listings = append(s.listings[:index], s.listings[index+1:]...)
	return s.persist()
}

func (s *Store) indexOf(id string) int {
	id = strings.TrimSpace(id)
	for index, listing := range s.listings {
		if listing.ID == id {
			return index
		}
	}
	return -1
}

func (s *Store) persist() error {
	return s.files.Save(listingsKey, s.listings)
}

var _ ports.ListingRepository = (*Store)(nil)
