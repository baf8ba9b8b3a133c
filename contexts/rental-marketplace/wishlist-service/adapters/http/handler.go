package httpadapter

import (
	"context"
	"log/slog"

	"rentloo/contexts/rental-marketplace/wishlist-service/application"
	httptransport "rentloo/contexts/rental-marketplace/wishlist-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListSavedHandler(ctx context.Context) (httptransport.WishlistResponse, error) {
	ids, err := h.Service.ListSaved(ctx)
	if err != nil {
		return httptransport.WishlistResponse{}, err
	}
	if ids == nil {
		ids = []string{}
	}
	return httptransport.WishlistResponse{ListingIDs: ids}, nil
}

func (h Handler) SaveHandler(ctx context.Context, listingID string) error {
	return h.Service.Save(ctx, listingID)
}

func (h Handler) UnsaveHandler(ctx context.Context, listingID string) error {
	return h.Service.Unsave(ctx, listingID)
}

func (h Handler) ToggleHandler(ctx context.Context, listingID string) (httptransport.ToggleResponse, error) {
	saved, err := h.Service.Toggle(ctx, listingID)
	if err != nil {
		return httptransport.ToggleResponse{}, err
	}
	return httptransport.ToggleResponse{ListingID: listingID, Saved: saved}, nil
}
