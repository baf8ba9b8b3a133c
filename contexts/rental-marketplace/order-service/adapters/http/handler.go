package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"rentloo/contexts/rental-marketplace/order-service/application"
	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	httptransport "rentloo/contexts/rental-marketplace/order-service/transport/http"
)

const dateLayout = "2006-01-02"

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CheckoutHandler(ctx context.Context, req httptransport.CheckoutRequest) (httptransport.OrderResponse, error) {
	order, err := h.Service.Checkout(ctx, application.CheckoutInput{
		PaymentMethod: entities.PaymentMethod(req.PaymentMethod),
		Customer: entities.CustomerDetails{
			Name:       req.Name,
			Email:      req.Email,
			Phone:      req.Phone,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
		},
	})
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return mapOrder(order), nil
}

func (h Handler) ListOrdersHandler(ctx context.Context) (httptransport.OrdersResponse, error) {
	orders, err := h.Service.ListOrders(ctx)
	if err != nil {
		return httptransport.OrdersResponse{}, err
	}
	items := make([]httptransport.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, mapOrder(order))
	}
	return httptransport.OrdersResponse{Items: items}, nil
}

func (h Handler) GetOrderHandler(ctx context.Context, id string) (httptransport.OrderResponse, error) {
	order, err := h.Service.GetOrder(ctx, id)
	if err != nil {
		return httptransport.OrderResponse{}, err
	}
	return mapOrder(order), nil
}

func mapOrder(order entities.Order) httptransport.OrderResponse {
	items := make([]httptransport.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, httptransport.OrderItemResponse{
			ListingID:   item.ListingID,
			Title:       item.Title,
			Image:       item.Image,
			PricePerDay: item.PricePerDay,
			Currency:    item.Currency,
			StartDate:   item.StartDate.Format(dateLayout),
			EndDate:     item.EndDate.Format(dateLayout),
			Days:        item.Days,
			Total:       item.Total,
		})
	}
	return httptransport.OrderResponse{
		ID:            order.ID,
		Items:         items,
		Subtotal:      order.Subtotal,
		ServiceFee:    order.ServiceFee,
		Total:         order.Total,
		Currency:      order.Currency,
		Status:        string(order.Status),
		PaymentMethod: string(order.PaymentMethod),
		CustomerName:  order.Customer.Name,
		CreatedAt:     order.CreatedAt.UTC().Format(time.RFC3339),
	}
}
