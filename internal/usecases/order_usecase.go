package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/domain/pricing"
	"qrmenu.backend/internal/domain/repositories"
	"qrmenu.backend/pkg/utils"
)

// orderNumberAttempts bounds retries on order number collisions
const orderNumberAttempts = 3

// OrderUsecase handles order lifecycle business logic
type OrderUsecase struct {
	orderRepo      repositories.OrderRepository
	restaurantRepo repositories.RestaurantRepository
	settingsRepo   repositories.SettingsRepository
	dishRepo       repositories.DishRepository
	uow            repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	restaurantRepo repositories.RestaurantRepository,
	settingsRepo repositories.SettingsRepository,
	dishRepo repositories.DishRepository,
	uow repositories.UnitOfWork,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		settingsRepo:   settingsRepo,
		dishRepo:       dishRepo,
		uow:            uow,
	}
}

// CreateOrder places a public order against the restaurant behind the QR code.
// Dish names, unit prices and option modifiers are snapshotted onto the items;
// amounts are computed by the pricing calculator and validated against the
// restaurant's order limits.
func (u *OrderUsecase) CreateOrder(ctx context.Context, qrData string, input *entities.CreateOrderInput) (*entities.Order, error) {
	restaurant, err := u.restaurantRepo.GetByQRData(ctx, qrData)
	if err != nil {
		return nil, err
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantInactive
	}

	settings, err := u.settingsRepo.GetByRestaurantID(ctx, restaurant.ID)
	if err != nil {
		return nil, err
	}

	items, err := u.buildItems(ctx, restaurant.ID, input.Items)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.Calculate(items, restaurant.TaxRate, restaurant.ServiceCharge)
	if err != nil {
		return nil, err
	}
	if quote.Total.LessThan(settings.MinOrderAmount) || quote.Total.GreaterThan(settings.MaxOrderAmount) {
		return nil, domainerrors.ErrOrderAmountOutOfRange
	}

	order := &entities.Order{
		ID:              utils.GenerateUUIDv7(),
		RestaurantID:    restaurant.ID,
		CustomerName:    null.NewString(input.CustomerName, input.CustomerName != ""),
		CustomerPhone:   null.NewString(input.CustomerPhone, input.CustomerPhone != ""),
		CustomerEmail:   null.NewString(input.CustomerEmail, input.CustomerEmail != ""),
		TableNumber:     null.NewString(input.TableNumber, input.TableNumber != ""),
		Status:          entities.OrderStatusPending,
		Subtotal:        quote.Subtotal,
		TaxAmount:       quote.Tax,
		ServiceAmount:   quote.Service,
		TotalAmount:     quote.Total,
		SpecialRequests: input.SpecialRequests,
		QRData:          restaurant.QRData,
		Items:           items,
	}
	for _, item := range items {
		item.OrderID = order.ID
	}

	// The order number carries a random suffix; the unique index on it is the
	// source of truth, so retry with a fresh number on collision.
	var lastErr error
	for attempt := 0; attempt < orderNumberAttempts; attempt++ {
		number, err := utils.NewOrderNumber(time.Now())
		if err != nil {
			return nil, err
		}
		order.OrderNumber = number

		err = u.uow.Do(ctx, func(txCtx context.Context) error {
			return u.orderRepo.Create(txCtx, order)
		})
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, domainerrors.ErrDuplicateOrderNumber) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func (u *OrderUsecase) buildItems(ctx context.Context, restaurantID uuid.UUID, inputs []entities.CreateOrderItemInput) ([]*entities.OrderItem, error) {
	items := make([]*entities.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		dishID, err := uuid.Parse(in.DishID)
		if err != nil {
			return nil, domainerrors.ErrInvalidInput
		}

		dish, err := u.dishRepo.GetByID(ctx, dishID)
		if err != nil {
			return nil, err
		}
		if dish.RestaurantID != restaurantID {
			return nil, domainerrors.ErrCrossRestaurantReference
		}
		if !dish.IsAvailable {
			return nil, domainerrors.ErrDishUnavailable
		}

		selected := make([]entities.SelectedOption, 0, len(in.OptionIDs))
		for _, rawID := range in.OptionIDs {
			optionID, err := uuid.Parse(rawID)
			if err != nil {
				return nil, domainerrors.ErrInvalidInput
			}
			option := dish.OptionByID(optionID)
			if option == nil {
				return nil, domainerrors.ErrInvalidInput
			}
			if !option.IsAvailable {
				return nil, domainerrors.ErrDishUnavailable
			}
			selected = append(selected, entities.SelectedOption{
				ID:            option.ID,
				Name:          option.Name,
				PriceModifier: option.PriceModifier,
			})
		}

		items = append(items, &entities.OrderItem{
			ID:              utils.GenerateUUIDv7(),
			DishID:          dish.ID,
			DishName:        dish.Name,
			Quantity:        in.Quantity,
			UnitPrice:       dish.Price,
			SelectedOptions: selected,
			SpecialRequests: in.SpecialRequests,
		})
	}
	return items, nil
}

// GetOrder returns an order owned by the user's restaurant
func (u *OrderUsecase) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	_, order, err := u.ownedOrder(ctx, userID, orderID)
	return order, err
}

// TrackByNumber returns an order by its public order number
func (u *OrderUsecase) TrackByNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	return u.orderRepo.GetByOrderNumber(ctx, orderNumber)
}

// ListOrders returns the restaurant's orders, newest first
func (u *OrderUsecase) ListOrders(ctx context.Context, userID uuid.UUID, filter *entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return u.orderRepo.List(ctx, restaurant.ID, filter, limit, offset)
}

// UpdateStatus moves an order along the status graph. The optimistic check in
// the repository guards against concurrent transitions.
func (u *OrderUsecase) UpdateStatus(ctx context.Context, userID, orderID uuid.UUID, next entities.OrderStatus) (*entities.Order, error) {
	if !next.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	_, order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Status.CanTransitionTo(next) {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now()
	if err := u.orderRepo.UpdateStatus(ctx, order.ID, order.Status, next, now); err != nil {
		return nil, err
	}

	order.ApplyTransition(next, now)
	return order, nil
}

// CancelOrder cancels an order on the owner's behalf. Unlike UpdateStatus it
// applies the stricter owner guard: only pending and confirmed orders qualify.
func (u *OrderUsecase) CancelOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	_, order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !order.CanCancel() {
		return nil, domainerrors.ErrInvalidTransition
	}

	now := time.Now()
	if err := u.orderRepo.UpdateStatus(ctx, order.ID, order.Status, entities.OrderStatusCancelled, now); err != nil {
		return nil, err
	}

	order.ApplyTransition(entities.OrderStatusCancelled, now)
	return order, nil
}

// SetPaid marks an order as paid with the given method. Marking an order that
// is already paid with the same method is a no-op, so the recorded PaidAt
// survives repeated calls.
func (u *OrderUsecase) SetPaid(ctx context.Context, userID, orderID uuid.UUID, method entities.PaymentMethod) (*entities.Order, error) {
	if !method.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	_, order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if order.IsPaid && order.PaymentMethod == method {
		return order, nil
	}

	paidAt := time.Now()
	if err := u.orderRepo.SetPaid(ctx, order.ID, method, paidAt); err != nil {
		return nil, err
	}

	order.IsPaid = true
	order.PaymentMethod = method
	order.PaidAt = null.TimeFrom(paidAt)
	return order, nil
}

// SetUnpaid reverts an order to unpaid
func (u *OrderUsecase) SetUnpaid(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	_, order, err := u.ownedOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if err := u.orderRepo.SetUnpaid(ctx, order.ID); err != nil {
		return nil, err
	}

	order.IsPaid = false
	order.PaymentMethod = ""
	order.PaidAt = null.Time{}
	return order, nil
}

// Stats returns the dashboard summary for the user's restaurant. Today is
// measured from local midnight.
func (u *OrderUsecase) Stats(ctx context.Context, userID uuid.UUID) (*entities.OrderStats, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return u.orderRepo.Stats(ctx, restaurant.ID, dayStart)
}

// ownedOrder loads the order and checks it belongs to the user's restaurant
func (u *OrderUsecase) ownedOrder(ctx context.Context, userID, orderID uuid.UUID) (*entities.RestaurantProfile, *entities.Order, error) {
	restaurant, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if order.RestaurantID != restaurant.ID {
		return nil, nil, domainerrors.ErrForbidden
	}
	return restaurant, order, nil
}
