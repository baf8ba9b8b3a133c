package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
}

type OrderItemResponse struct {
	ListingID   string  `json:"listing_id"`
	Title       string  `json:"title"`
	Image       string  `json:"image,omitempty"`
	PricePerDay float64 `json:"price_per_day"`
	Currency    string  `json:"currency,omitempty"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Days        int     `json:"days"`
	Total       float64 `json:"total"`
}

type OrderResponse struct {
	ID            string              `json:"id"`
	Items         []OrderItemResponse `json:"items"`
	Subtotal      float64             `json:"subtotal"`
	ServiceFee    float64             `json:"service_fee"`
	Total         float64             `json:"total"`
	Currency      string              `json:"currency,omitempty"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"payment_method"`
	CustomerName  string              `json:"customer_name"`
	CreatedAt     string              `json:"created_at"`
}

type OrdersResponse struct {
	Items []OrderResponse `json:"items"`
}
