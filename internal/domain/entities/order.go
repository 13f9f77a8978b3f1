package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "cash"
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodOnline PaymentMethod = "online"
)

// Valid reports whether the payment method is a known value
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodOnline:
		return true
	}
	return false
}

// Valid reports whether the status is a known value
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// IsTerminal reports whether no further transitions are possible
func (s OrderStatus) IsTerminal() bool {
	return len(orderTransitions[s]) == 0
}

// orderTransitions is the full state graph. The forward path is strictly
// linear; cancellation is reachable from every non-terminal state. Owner-facing
// surfaces apply the stricter CanCancel guard on top of this graph.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:     {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted: {},
	OrderStatusCancelled: {},
}

// CanTransitionTo reports whether the state graph allows moving to next
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order represents a customer order placed against a restaurant.
// Monetary fields are recomputed from items via the pricing calculator and
// never edited independently; TotalAmount == Subtotal + TaxAmount + ServiceAmount.
// Orders are never physically deleted.
type Order struct {
	ID            uuid.UUID       `json:"id"`
	RestaurantID  uuid.UUID       `json:"restaurantId"`
	OrderNumber   string          `json:"orderNumber"`
	CustomerName  null.String     `json:"customerName,omitempty"`
	CustomerPhone null.String     `json:"customerPhone,omitempty"`
	CustomerEmail null.String     `json:"customerEmail,omitempty"`
	TableNumber   null.String     `json:"tableNumber,omitempty"`
	Status        OrderStatus     `json:"status"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	TaxAmount     decimal.Decimal `json:"taxAmount"`
	ServiceAmount decimal.Decimal `json:"serviceAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod,omitempty"`
	IsPaid          bool          `json:"isPaid"`
	PaidAt          null.Time     `json:"paidAt,omitempty"`
	SpecialRequests string        `json:"specialRequests,omitempty"`
	// QRData is a snapshot of the restaurant's QR identifier at order time.
	QRData      string    `json:"qrData"`
	ConfirmedAt null.Time `json:"confirmedAt,omitempty"`
	CompletedAt null.Time `json:"completedAt,omitempty"`
	CancelledAt null.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Items []*OrderItem `json:"items,omitempty"`
}

// CanModify reports whether items and customer info may still be edited.
// Only pending orders are modifiable.
func (o *Order) CanModify() bool {
	return o.Status == OrderStatusPending
}

// CanCancel is the owner-facing cancellation guard: pending or confirmed only.
// The underlying state graph is more permissive (admin contract).
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending || o.Status == OrderStatusConfirmed
}

// ItemsCount returns the total quantity across all items
func (o *Order) ItemsCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}

// ApplyTransition mutates status and stamps the matching timestamp.
// Callers must have validated the transition against the state graph;
// persistence additionally guards with an optimistic status check.
func (o *Order) ApplyTransition(next OrderStatus, now time.Time) {
	prev := o.Status
	o.Status = next

	switch {
	case next == OrderStatusConfirmed && prev == OrderStatusPending:
		o.ConfirmedAt = null.TimeFrom(now)
	case next == OrderStatusCompleted:
		o.CompletedAt = null.TimeFrom(now)
	case next == OrderStatusCancelled:
		o.CancelledAt = null.TimeFrom(now)
	}
}

// SelectedOption is an immutable snapshot of a dish option chosen for an
// order item, stored as JSON on the item.
type SelectedOption struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	PriceModifier decimal.Decimal `json:"priceModifier"`
}

// OrderItem is a line of an order: one dish, its quantity, and the unit price
// and option snapshots captured at order time. Immutable after creation.
type OrderItem struct {
	ID              uuid.UUID        `json:"id"`
	OrderID         uuid.UUID        `json:"orderId"`
	DishID          uuid.UUID        `json:"dishId"`
	DishName        string           `json:"dishName"`
	Quantity        int              `json:"quantity"`
	UnitPrice       decimal.Decimal  `json:"unitPrice"`
	SelectedOptions []SelectedOption `json:"selectedOptions,omitempty"`
	SpecialRequests string           `json:"specialRequests,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// OptionsPrice returns the summed price modifiers of the selected options
func (i *OrderItem) OptionsPrice() decimal.Decimal {
	total := decimal.Zero
	for _, opt := range i.SelectedOptions {
		total = total.Add(opt.PriceModifier)
	}
	return total
}

// TotalPrice returns (unit price + options) * quantity
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice.Add(i.OptionsPrice()).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CreateOrderInput is the public order-creation payload
type CreateOrderInput struct {
	CustomerName    string                 `json:"customerName" binding:"max=100"`
	CustomerPhone   string                 `json:"customerPhone" binding:"max=20"`
	CustomerEmail   string                 `json:"customerEmail" binding:"omitempty,email"`
	TableNumber     string                 `json:"tableNumber" binding:"max=20"`
	SpecialRequests string                 `json:"specialRequests"`
	Items           []CreateOrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrderItemInput is one requested line of a new order
type CreateOrderItemInput struct {
	DishID          string   `json:"dishId" binding:"required,uuid"`
	Quantity        int      `json:"quantity" binding:"required,min=1"`
	OptionIDs       []string `json:"optionIds" binding:"dive,uuid"`
	SpecialRequests string   `json:"specialRequests"`
}

// OrderFilter narrows owner order listings
type OrderFilter struct {
	Status        OrderStatus
	IsPaid        *bool
	PaymentMethod PaymentMethod
	DateFrom      *time.Time
	DateTo        *time.Time
}

// OrderStats summarises a restaurant's orders for the dashboard
type OrderStats struct {
	TotalOrders     int64           `json:"totalOrders"`
	TodayOrders     int64           `json:"todayOrders"`
	PendingOrders   int64           `json:"pendingOrders"`
	PreparingOrders int64           `json:"preparingOrders"`
	ReadyOrders     int64           `json:"readyOrders"`
	CompletedOrders int64           `json:"completedOrders"`
	CancelledOrders int64           `json:"cancelledOrders"`
	UnpaidOrders    int64           `json:"unpaidOrders"`
	TodayRevenue    decimal.Decimal `json:"todayRevenue"`
}
