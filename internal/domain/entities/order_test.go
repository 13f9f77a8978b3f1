package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"confirmed to preparing", OrderStatusConfirmed, OrderStatusPreparing, true},
		{"preparing to ready", OrderStatusPreparing, OrderStatusReady, true},
		{"ready to completed", OrderStatusReady, OrderStatusCompleted, true},
		{"pending to cancelled", OrderStatusPending, OrderStatusCancelled, true},
		{"preparing to cancelled", OrderStatusPreparing, OrderStatusCancelled, true},
		{"ready to cancelled", OrderStatusReady, OrderStatusCancelled, true},
		{"skip forward", OrderStatusPending, OrderStatusPreparing, false},
		{"backward", OrderStatusPreparing, OrderStatusConfirmed, false},
		{"pending to completed", OrderStatusPending, OrderStatusCompleted, false},
		{"completed is terminal", OrderStatusCompleted, OrderStatusCancelled, false},
		{"cancelled is terminal", OrderStatusCancelled, OrderStatusPending, false},
		{"self transition", OrderStatusPending, OrderStatusPending, false},
		{"unknown source", OrderStatus("shipped"), OrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusReady.IsTerminal())
}

func TestOrder_CanCancel(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusPending}).CanCancel())
	assert.True(t, (&Order{Status: OrderStatusConfirmed}).CanCancel())
	assert.False(t, (&Order{Status: OrderStatusPreparing}).CanCancel())
	assert.False(t, (&Order{Status: OrderStatusReady}).CanCancel())
	assert.False(t, (&Order{Status: OrderStatusCompleted}).CanCancel())
	assert.False(t, (&Order{Status: OrderStatusCancelled}).CanCancel())
}

func TestOrder_CanModify(t *testing.T) {
	assert.True(t, (&Order{Status: OrderStatusPending}).CanModify())
	assert.False(t, (&Order{Status: OrderStatusConfirmed}).CanModify())
	assert.False(t, (&Order{Status: OrderStatusCancelled}).CanModify())
}

func TestOrder_ApplyTransition_Timestamps(t *testing.T) {
	now := time.Now()

	o := &Order{Status: OrderStatusPending}
	o.ApplyTransition(OrderStatusConfirmed, now)
	assert.Equal(t, OrderStatusConfirmed, o.Status)
	assert.True(t, o.ConfirmedAt.Valid)
	assert.Equal(t, now, o.ConfirmedAt.Time)
	assert.False(t, o.CompletedAt.Valid)
	assert.False(t, o.CancelledAt.Valid)

	o.ApplyTransition(OrderStatusPreparing, now)
	o.ApplyTransition(OrderStatusReady, now)
	assert.False(t, o.CompletedAt.Valid)

	o.ApplyTransition(OrderStatusCompleted, now)
	assert.True(t, o.CompletedAt.Valid)

	cancelled := &Order{Status: OrderStatusPreparing}
	cancelled.ApplyTransition(OrderStatusCancelled, now)
	assert.True(t, cancelled.CancelledAt.Valid)
	assert.False(t, cancelled.ConfirmedAt.Valid)
}

func TestOrderItem_TotalPrice(t *testing.T) {
	item := &OrderItem{
		Quantity:  3,
		UnitPrice: decimal.RequireFromString("10.50"),
		SelectedOptions: []SelectedOption{
			{Name: "Large", PriceModifier: decimal.RequireFromString("2.00")},
			{Name: "No cheese", PriceModifier: decimal.RequireFromString("-0.50")},
		},
	}

	assert.True(t, decimal.RequireFromString("1.50").Equal(item.OptionsPrice()))
	assert.True(t, decimal.RequireFromString("36.00").Equal(item.TotalPrice()))
}

func TestOrder_ItemsCount(t *testing.T) {
	o := &Order{Items: []*OrderItem{{Quantity: 2}, {Quantity: 3}}}
	assert.Equal(t, 5, o.ItemsCount())
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentMethodCash.Valid())
	assert.True(t, PaymentMethodCard.Valid())
	assert.True(t, PaymentMethodOnline.Valid())
	assert.False(t, PaymentMethod("crypto").Valid())
	assert.False(t, PaymentMethod("").Valid())
}
