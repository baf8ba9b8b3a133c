// Package orderservice turns the basket into confirmed rental orders. A
// checkout charges the payment processor for the basket subtotal plus the
// platform service fee; only a successful charge produces an order.
package orderservice
