package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"qrmenu.backend/internal/domain/entities"
	domainErrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/infrastructure/models"
)

// OrderRepositoryImpl implements OrderRepository
type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entities.Order) error {
	m := &models.Order{
		ID:              order.ID,
		RestaurantID:    order.RestaurantID,
		OrderNumber:     order.OrderNumber,
		CustomerName:    order.CustomerName.Ptr(),
		CustomerPhone:   order.CustomerPhone.Ptr(),
		CustomerEmail:   order.CustomerEmail.Ptr(),
		TableNumber:     order.TableNumber.Ptr(),
		Status:          string(order.Status),
		Subtotal:        order.Subtotal,
		TaxAmount:       order.TaxAmount,
		ServiceAmount:   order.ServiceAmount,
		TotalAmount:     order.TotalAmount,
		SpecialRequests: order.SpecialRequests,
		QRData:          order.QRData,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	for _, item := range order.Items {
		optionsJSON, err := json.Marshal(item.SelectedOptions)
		if err != nil {
			return err
		}
		m.Items = append(m.Items, models.OrderItem{
			ID:              item.ID,
			DishID:          item.DishID,
			DishName:        item.DishName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			SelectedOptions: string(optionsJSON),
			SpecialRequests: item.SpecialRequests,
			CreatedAt:       time.Now(),
		})
	}

	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return translateDuplicate(err, domainErrors.ErrDuplicateOrderNumber)
	}
	order.ID = m.ID
	order.CreatedAt = m.CreatedAt
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m)
}

func (r *OrderRepositoryImpl) GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Preload("Items").
		Where("order_number = ?", orderNumber).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m)
}

func (r *OrderRepositoryImpl) List(ctx context.Context, restaurantID uuid.UUID, filter *entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("restaurant_id = ?", restaurantID)

	if filter != nil {
		if filter.Status != "" {
			query = query.Where("status = ?", string(filter.Status))
		}
		if filter.IsPaid != nil {
			query = query.Where("is_paid = ?", *filter.IsPaid)
		}
		if filter.PaymentMethod != "" {
			query = query.Where("payment_method = ?", string(filter.PaymentMethod))
		}
		if filter.DateFrom != nil {
			query = query.Where("created_at >= ?", *filter.DateFrom)
		}
		if filter.DateTo != nil {
			query = query.Where("created_at < ?", *filter.DateTo)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Order
	if err := query.Preload("Items").
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for _, m := range ms {
		model := m
		order, err := r.toEntity(&model)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}
	return orders, total, nil
}

// UpdateStatus performs an optimistic transition: the row moves only if it
// still holds the expected status. A zero rows-affected result means another
// writer got there first or the transition was never legal.
func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.OrderStatus, stamp time.Time) error {
	updates := map[string]interface{}{
		"status":     string(next),
		"updated_at": stamp,
	}
	switch {
	case next == entities.OrderStatusConfirmed && expected == entities.OrderStatusPending:
		updates["confirmed_at"] = stamp
	case next == entities.OrderStatusCompleted:
		updates["completed_at"] = stamp
	case next == entities.OrderStatusCancelled:
		updates["cancelled_at"] = stamp
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrInvalidTransition
	}
	return nil
}

func (r *OrderRepositoryImpl) SetPaid(ctx context.Context, id uuid.UUID, method entities.PaymentMethod, paidAt time.Time) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid":        true,
			"payment_method": string(method),
			"paid_at":        paidAt,
			"updated_at":     time.Now(),
		}))
}

func (r *OrderRepositoryImpl) SetUnpaid(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_paid":        false,
			"payment_method": "",
			"paid_at":        nil,
			"updated_at":     time.Now(),
		}))
}

func (r *OrderRepositoryImpl) Stats(ctx context.Context, restaurantID uuid.UUID, dayStart time.Time) (*entities.OrderStats, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)
	stats := &entities.OrderStats{TodayRevenue: decimal.Zero}

	base := func() *gorm.DB {
		return db.Model(&models.Order{}).Where("restaurant_id = ?", restaurantID)
	}

	if err := base().Count(&stats.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := base().Where("created_at >= ?", dayStart).Count(&stats.TodayOrders).Error; err != nil {
		return nil, err
	}

	statusCounts := []struct {
		status entities.OrderStatus
		dest   *int64
	}{
		{entities.OrderStatusPending, &stats.PendingOrders},
		{entities.OrderStatusPreparing, &stats.PreparingOrders},
		{entities.OrderStatusReady, &stats.ReadyOrders},
		{entities.OrderStatusCompleted, &stats.CompletedOrders},
		{entities.OrderStatusCancelled, &stats.CancelledOrders},
	}
	for _, sc := range statusCounts {
		if err := base().Where("status = ?", string(sc.status)).Count(sc.dest).Error; err != nil {
			return nil, err
		}
	}

	if err := base().Where("is_paid = ? AND status != ?", false, string(entities.OrderStatusCancelled)).
		Count(&stats.UnpaidOrders).Error; err != nil {
		return nil, err
	}

	var revenue struct {
		Total decimal.Decimal
	}
	if err := base().
		Select("COALESCE(SUM(total_amount), 0) AS total").
		Where("created_at >= ? AND status = ?", dayStart, string(entities.OrderStatusCompleted)).
		Scan(&revenue).Error; err != nil {
		return nil, err
	}
	stats.TodayRevenue = revenue.Total

	return stats, nil
}

func (r *OrderRepositoryImpl) GetStalePending(ctx context.Context, restaurantID uuid.UUID, cutoff time.Time, limit int) ([]*entities.Order, error) {
	var ms []models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).
		Where("restaurant_id = ? AND status = ? AND created_at < ?",
			restaurantID, string(entities.OrderStatusPending), cutoff).
		Order("created_at ASC").
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(ms))
	for _, m := range ms {
		model := m
		order, err := r.toEntity(&model)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) toEntity(m *models.Order) (*entities.Order, error) {
	o := &entities.Order{
		ID:              m.ID,
		RestaurantID:    m.RestaurantID,
		OrderNumber:     m.OrderNumber,
		CustomerName:    null.StringFromPtr(m.CustomerName),
		CustomerPhone:   null.StringFromPtr(m.CustomerPhone),
		CustomerEmail:   null.StringFromPtr(m.CustomerEmail),
		TableNumber:     null.StringFromPtr(m.TableNumber),
		Status:          entities.OrderStatus(m.Status),
		Subtotal:        m.Subtotal,
		TaxAmount:       m.TaxAmount,
		ServiceAmount:   m.ServiceAmount,
		TotalAmount:     m.TotalAmount,
		PaymentMethod:   entities.PaymentMethod(m.PaymentMethod),
		IsPaid:          m.IsPaid,
		PaidAt:          null.TimeFromPtr(m.PaidAt),
		SpecialRequests: m.SpecialRequests,
		QRData:          m.QRData,
		ConfirmedAt:     null.TimeFromPtr(m.ConfirmedAt),
		CompletedAt:     null.TimeFromPtr(m.CompletedAt),
		CancelledAt:     null.TimeFromPtr(m.CancelledAt),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}

	for _, item := range m.Items {
		var options []entities.SelectedOption
		if item.SelectedOptions != "" {
			if err := json.Unmarshal([]byte(item.SelectedOptions), &options); err != nil {
				return nil, err
			}
		}
		o.Items = append(o.Items, &entities.OrderItem{
			ID:              item.ID,
			OrderID:         item.OrderID,
			DishID:          item.DishID,
			DishName:        item.DishName,
			Quantity:        item.Quantity,
			UnitPrice:       item.UnitPrice,
			SelectedOptions: options,
			SpecialRequests: item.SpecialRequests,
			CreatedAt:       item.CreatedAt,
		})
	}

	return o, nil
}
