package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"rentloo/contexts/rental-marketplace/cart-service/application"
	"rentloo/contexts/rental-marketplace/cart-service/domain/entities"
	domainerrors "rentloo/contexts/rental-marketplace/cart-service/domain/errors"
	httptransport "rentloo/contexts/rental-marketplace/cart-service/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) AddItemHandler(ctx context.Context, req httptransport.AddItemRequest) (httptransport.CartItemResponse, error) {
	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return httptransport.CartItemResponse{}, domainerrors.ErrInvalidRequest
	}
	item, err := h.Service.AddItem(ctx, application.AddItemInput{
		ListingID:   req.ListingID,
		Title:       req.Title,
		Image:       req.Image,
		PricePerDay: req.PricePerDay,
		Currency:    req.Currency,
		Location:    req.Location,
		OwnerName:   req.OwnerName,
		StartDate:   startDate,
		Days:        req.Days,
	})
	if err != nil {
		return httptransport.CartItemResponse{}, err
	}
	return mapItem(item), nil
}

func (h Handler) RemoveItemHandler(ctx context.Context, id string) error {
	return h.Service.RemoveItem(ctx, id)
}

func (h Handler) ListItemsHandler(ctx context.Context) (httptransport.CartResponse, error) {
	items, err := h.Service.ListItems(ctx)
	if err != nil {
		return httptransport.CartResponse{}, err
	}
	responses := make([]httptransport.CartItemResponse, 0, len(items))
	var subtotal float64
	for _, item := range items {
		responses = append(responses, mapItem(item))
		subtotal += item.Total
	}
	return httptransport.CartResponse{Items: responses, Subtotal: subtotal}, nil
}

func (h Handler) CountHandler(ctx context.Context) (httptransport.CartCountResponse, error) {
	count, err := h.Service.Count(ctx)
	if err != nil {
		return httptransport.CartCountResponse{}, err
	}
	return httptransport.CartCountResponse{Count: count}, nil
}

func (h Handler) ClearHandler(ctx context.Context) error {
	return h.Service.Clear(ctx)
}

func mapItem(item entities.CartItem) httptransport.CartItemResponse {
	return httptransport.CartItemResponse{
		ID:          item.ID,
		ListingID:   item.ListingID,
		Title:       item.Title,
		Image:       item.Image,
		PricePerDay: item.PricePerDay,
		Currency:    item.Currency,
		Location:    item.Location,
		OwnerName:   item.OwnerName,
		StartDate:   item.StartDate.Format(dateLayout),
		EndDate:     item.EndDate.Format(dateLayout),
		Days:        item.Days,
		Total:       item.Total,
	}
}
