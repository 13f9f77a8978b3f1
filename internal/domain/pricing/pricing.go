// Package pricing computes order amounts with exact decimal arithmetic.
// All monetary results are rounded half-up to 2 decimal places.
package pricing

import (
	"github.com/shopspring/decimal"

	"qrmenu.backend/internal/domain/entities"
	domainErrors "qrmenu.backend/internal/domain/errors"
)

var oneHundred = decimal.NewFromInt(100)

// Quote is the priced breakdown of an order.
// Total is always Subtotal + Tax + Service, each rounded independently.
type Quote struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Service  decimal.Decimal
	Total    decimal.Decimal
}

// ItemTotal returns (unit price + summed option modifiers) * quantity.
// The quantity must be positive; the effective unit price after modifiers
// must not be negative.
func ItemTotal(unitPrice decimal.Decimal, modifiers []decimal.Decimal, quantity int) (decimal.Decimal, error) {
	if quantity <= 0 {
		return decimal.Zero, domainErrors.ErrInvalidPricingInput
	}

	effective := unitPrice
	for _, m := range modifiers {
		effective = effective.Add(m)
	}
	if effective.IsNegative() {
		return decimal.Zero, domainErrors.ErrInvalidPricingInput
	}

	return effective.Mul(decimal.NewFromInt(int64(quantity))), nil
}

// Subtotal sums the line totals of all items
func Subtotal(items []*entities.OrderItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range items {
		modifiers := make([]decimal.Decimal, 0, len(item.SelectedOptions))
		for _, opt := range item.SelectedOptions {
			modifiers = append(modifiers, opt.PriceModifier)
		}
		line, err := ItemTotal(item.UnitPrice, modifiers, item.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(line)
	}
	return total, nil
}

// Calculate prices an order: subtotal over items, then percentage tax and
// service charge on the subtotal. Rates are percentages in [0,100].
func Calculate(items []*entities.OrderItem, taxRate, serviceCharge decimal.Decimal) (*Quote, error) {
	if taxRate.IsNegative() || taxRate.GreaterThan(oneHundred) ||
		serviceCharge.IsNegative() || serviceCharge.GreaterThan(oneHundred) {
		return nil, domainErrors.ErrInvalidPricingInput
	}

	subtotal, err := Subtotal(items)
	if err != nil {
		return nil, err
	}

	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Div(oneHundred).Round(2)
	service := subtotal.Mul(serviceCharge).Div(oneHundred).Round(2)

	return &Quote{
		Subtotal: subtotal,
		Tax:      tax,
		Service:  service,
		Total:    subtotal.Add(tax).Add(service),
	}, nil
}
