package entities

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderConfirmed OrderStatus = "confirmed"
	OrderFailed    OrderStatus = "failed"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "credit_card"
	PaymentPayPal     PaymentMethod = "paypal"
	PaymentApplePay   PaymentMethod = "apple_pay"
	PaymentGooglePay  PaymentMethod = "google_pay"
)

// PaymentMethods lists every method the checkout accepts.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentPayPal, PaymentApplePay, PaymentGooglePay}
}

// ServiceFeePerItem is the flat platform fee charged per booking line.
const ServiceFeePerItem float64 = 200

// CustomerDetails is the delivery and contact block captured at checkout.
type CustomerDetails struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	City       string
	PostalCode string
}

// OrderItem is a booking line frozen at checkout time.
type OrderItem struct {
	ListingID   string
	Title       string
	Image       string
	PricePerDay float64
	Currency    string
	StartDate   time.Time
	EndDate     time.Time
	Days        int
	Total       float64
}

type Order struct {
	ID            string
	Items         []OrderItem
	Subtotal      float64
	ServiceFee    float64
	Total         float64
	Currency      string
	Status        OrderStatus
	PaymentMethod PaymentMethod
	Customer      CustomerDetails
	CreatedAt     time.Time
}
