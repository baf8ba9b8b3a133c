package payment

import (
	"context"

	"rentloo/contexts/rental-marketplace/order-service/domain/entities"
	"rentloo/contexts/rental-marketplace/order-service/ports"
)

// Simulator stands in for a real payment provider. Decide, when set,
// adjudicates each charge; a nil Decide approves everything, which keeps
// checkout deterministic in tests and demos.
type Simulator struct {
	Decide func(amount float64, method entities.PaymentMethod) error
}

func (s Simulator) Charge(_ context.Context, amount float64, method entities.PaymentMethod) error {
	if s.Decide == nil {
		return nil
	}
	return s.Decide(amount, method)
}

var _ ports.PaymentProcessor = Simulator{}
