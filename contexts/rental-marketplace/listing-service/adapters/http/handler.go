package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"rentloo/contexts/rental-marketplace/listing-service/application"
	"rentloo/contexts/rental-marketplace/listing-service/domain/entities"
	"rentloo/contexts/rental-marketplace/listing-service/ports"
	httptransport "rentloo/contexts/rental-marketplace/listing-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateListingHandler(ctx context.Context, req httptransport.CreateListingRequest) (httptransport.ListingResponse, error) {
	listing, err := h.Service.CreateListing(ctx, application.CreateListingInput{
		Title:              req.Title,
		Image:              req.Image,
		Images:             req.Images,
		PricePerDay:        req.PricePerDay,
		Currency:           req.Currency,
		Location:           req.Location,
		OwnerName:          req.OwnerName,
		OwnerAvatar:        req.OwnerAvatar,
		Description:        req.Description,
		Category:           req.Category,
		CancellationPolicy: entities.CancellationPolicy(req.CancellationPolicy),
	})
	if err != nil {
		return httptransport.ListingResponse{}, err
	}
	return mapListing(listing), nil
}

func (h Handler) GetListingHandler(ctx context.Context, id string) (httptransport.ListingResponse, error) {
	listing, err := h.Service.GetListing(ctx, id)
	if err != nil {
		return httptransport.ListingResponse{}, err
	}
	return mapListing(listing), nil
}

func (h Handler) UpdateListingHandler(ctx context.Context, id string, req httptransport.UpdateListingRequest) (httptransport.ListingResponse, error) {
	update := ports.UpdateListingInput{
		Title:       req.Title,
		Image:       req.Image,
		Images:      req.Images,
		PricePerDay: req.PricePerDay,
		Location:    req.Location,
		Description: req.Description,
		Category:    req.Category,
		IsPopular:   req.IsPopular,
	}
	if req.CancellationPolicy != nil {
		policy := entities.CancellationPolicy(*req.CancellationPolicy)
		update.CancellationPolicy = &policy
	}
	listing, err := h.Service.UpdateListing(ctx, id, update)
	if err != nil {
		return httptransport.ListingResponse{}, err
	}
	return mapListing(listing), nil
}

func (h Handler) DeleteListingHandler(ctx context.Context, id string) error {
	return h.Service.DeleteListing(ctx, id)
}

func (h Handler) ListListingsHandler(ctx context.Context) (httptransport.ListingsResponse, error) {
	listings, err := h.Service.ListListings(ctx)
	if err != nil {
		return httptransport.ListingsResponse{}, err
	}
	return mapListings(listings), nil
}

func (h Handler) SearchListingsHandler(ctx context.Context, query string, category string) (httptransport.ListingsResponse, error) {
	listings, err := h.Service.SearchListings(ctx, query, category)
	if err != nil {
		return httptransport.ListingsResponse{}, err
	}
	return mapListings(listings), nil
}

func (h Handler) PopularListingsHandler(ctx context.Context) (httptransport.ListingsResponse, error) {
	listings, err := h.Service.PopularListings(ctx)
	if err != nil {
		return httptransport.ListingsResponse{}, err
	}
	return mapListings(listings), nil
}

func (h Handler) CategoriesHandler(_ context.Context) httptransport.CategoriesResponse {
	categories := h.Service.Categories()
	items := make([]httptransport.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		items = append(items, httptransport.CategoryResponse{
			ID:   category.ID,
			Name: category.Name,
			Slug: category.Slug,
		})
	}
	return httptransport.CategoriesResponse{Items: items}
}

func mapListing(listing entities.Listing) httptransport.ListingResponse {
	createdAt := ""
	if !listing.CreatedAt.IsZero() {
		createdAt = listing.CreatedAt.UTC().Format(time.RFC3339)
	}
	return httptransport.ListingResponse{
		ID:                 listing.ID,
		Title:              listing.Title,
		Image:              listing.Image,
		Images:             listing.Images,
		PricePerDay:        listing.PricePerDay,
		Currency:           listing.Currency,
		Location:           listing.Location,
		OwnerName:          listing.OwnerName,
		OwnerAvatar:        listing.OwnerAvatar,
		IsPopular:          listing.IsPopular,
		Description:        listing.Description,
		Category:           listing.Category,
		CancellationPolicy: string(listing.CancellationPolicy),
		CreatedAt:          createdAt,
	}
}

func mapListings(listings []entities.Listing) httptransport.ListingsResponse {
	items := make([]httptransport.ListingResponse, 0, len(listings))
	for _, listing := range listings {
		items = append(items, mapListing(listing))
	}
	return httptransport.ListingsResponse{Items: items}
}
