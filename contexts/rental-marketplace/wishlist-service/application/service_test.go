package application

import (
	"context"
	"errors"
	"testing"

	"rentloo/contexts/rental-marketplace/wishlist-service/adapters/memory"
	domainerrors "rentloo/contexts/rental-marketplace/wishlist-service/domain/errors"
)

func newService() Service {
	return Service{Wishlist: memory.NewStore()}
}

func TestSaveIsIdempotent(t *testing.T) {
	service := newService()

	if err := service.Save(context.Background(), "5"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := service.Save(context.Background(), "5"); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	saved, err := service.ListSaved(context.Background())
	if err != nil {
		t.Fatalf("ListSaved: %v", err)
	}
	if len(saved) != 1 || saved[0] != "5" {
		t.Fatalf("expected [5], got %v", saved)
	}
}

func TestUnsaveUnknownIDIsNoOp(t *testing.T) {
	service := newService()

	if err := service.Unsave(context.Background(), "missing"); err != nil {
		t.Fatalf("Unsave: %v", err)
	}
}

func TestToggleFlipsSavedState(t *testing.T) {
	service := newService()

	saved, err := service.Toggle(context.Background(), "6")
	if err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !saved {
		t.Fatal("expected first toggle to save")
	}

	saved, err = service.Toggle(context.Background(), "6")
	if err != nil {
		t.Fatalf("second Toggle: %v", err)
	}
	if saved {
		t.Fatal("expected second toggle to unsave")
	}

	contains, err := service.Contains(context.Background(), "6")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if contains {
		t.Fatal("expected listing removed from wishlist")
	}
}

func TestBlankListingIDIsRejected(t *testing.T) {
	service := newService()

	if err := service.Save(context.Background(), "  "); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("Save: expected ErrInvalidRequest, got %v", err)
	}
	if _, err := service.Contains(context.Background(), ""); !errors.Is(err, domainerrors.ErrInvalidRequest) {
		t.Fatalf("Contains: expected ErrInvalidRequest, got %v", err)
	}
}
