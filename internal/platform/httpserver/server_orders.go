package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	carterrors "rentloo/contexts/rental-marketplace/cart-service/domain/errors"
	carthttp "rentloo/contexts/rental-marketplace/cart-service/transport/http"
	ordererrors "rentloo/contexts/rental-marketplace/order-service/domain/errors"
	orderhttp "rentloo/contexts/rental-marketplace/order-service/transport/http"
)

func (s *Server) registerOrderRoutes() {
	s.mux.HandleFunc("GET /api/orders/v1/cart", s.handleCart)
	s.mux.HandleFunc("GET /api/orders/v1/cart/count", s.handleCartCount)
	s.mux.HandleFunc("POST /api/orders/v1/cart/items", s.handleCartAddItem)
	s.mux.HandleFunc("DELETE /api/orders/v1/cart/items/{item_id}", s.handleCartRemoveItem)
	s.mux.HandleFunc("DELETE /api/orders/v1/cart", s.handleCartClear)

	s.mux.HandleFunc("POST /api/orders/v1/checkout", s.handleCheckout)
	s.mux.HandleFunc("GET /api/orders/v1/orders", s.handleListOrders)
	s.mux.HandleFunc("GET /api/orders/v1/orders/{order_id}", s.handleGetOrder)
}

func (s *Server) handleCart(w http.ResponseWriter, r *http.Request) {
	resp, err := s.cart.Handler.ListItemsHandler(r.Context())
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCartCount(w http.ResponseWriter, r *http.Request) {
	resp, err := s.cart.Handler.CountHandler(r.Context())
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCartAddItem(w http.ResponseWriter, r *http.Request) {
	var req carthttp.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCartError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.cart.Handler.AddItemHandler(r.Context(), req)
	if err != nil {
		writeCartDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleCartRemoveItem(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Handler.RemoveItemHandler(r.Context(), r.PathValue("item_id")); err != nil {
		writeCartDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCartClear(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.Handler.ClearHandler(r.Context()); err != nil {
		writeCartDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req orderhttp.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeOrderError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.orders.Handler.CheckoutHandler(r.Context(), req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	resp, err := s.orders.Handler.ListOrdersHandler(r.Context())
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	resp, err := s.orders.Handler.GetOrderHandler(r.Context(), r.PathValue("order_id"))
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeCartDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, carterrors.ErrInvalidRequest):
		writeCartError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, carterrors.ErrDuplicateItem):
		writeCartError(w, http.StatusConflict, "duplicate_item", err.Error())
	case errors.Is(err, carterrors.ErrItemNotFound):
		writeCartError(w, http.StatusNotFound, "item_not_found", err.Error())
	default:
		writeCartError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrInvalidRequest):
		writeOrderError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, ordererrors.ErrEmptyCart):
		writeOrderError(w, http.StatusConflict, "empty_cart", err.Error())
	case errors.Is(err, ordererrors.ErrPaymentDeclined):
		writeOrderError(w, http.StatusPaymentRequired, "payment_declined", err.Error())
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		writeOrderError(w, http.StatusNotFound, "order_not_found", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func writeCartError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, carthttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{
		Code:    code,
		Message: message,
	})
}
