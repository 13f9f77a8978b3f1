package handlers

import (
	"context"
	"time"

	"github.com/google/uuid"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

// In-memory repository stubs shared by the handler tests. They implement just
// enough behaviour for the usecases to run end to end through the router.

type uowStub struct{}

func (uowStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type userRepoStub struct {
	byID map[uuid.UUID]*entities.User
}

func newUserRepoStub() *userRepoStub {
	return &userRepoStub{byID: map[uuid.UUID]*entities.User{}}
}

func (s *userRepoStub) Create(_ context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.byID[user.ID] = user
	return nil
}

func (s *userRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return u, nil
}

func (s *userRepoStub) GetByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range s.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *userRepoStub) Update(_ context.Context, user *entities.User) error {
	s.byID[user.ID] = user
	return nil
}

func (s *userRepoStub) SetRestaurantOwner(_ context.Context, id uuid.UUID, owner bool) error {
	u, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	u.IsRestaurantOwner = owner
	return nil
}

func (s *userRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *userRepoStub) List(context.Context, string, int, int) ([]*entities.User, int64, error) {
	out := make([]*entities.User, 0, len(s.byID))
	for _, u := range s.byID {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

type restaurantRepoStub struct {
	byID map[uuid.UUID]*entities.RestaurantProfile
}

func newRestaurantRepoStub() *restaurantRepoStub {
	return &restaurantRepoStub{byID: map[uuid.UUID]*entities.RestaurantProfile{}}
}

func (s *restaurantRepoStub) Create(_ context.Context, profile *entities.RestaurantProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	s.byID[profile.ID] = profile
	return nil
}

func (s *restaurantRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.RestaurantProfile, error) {
	p, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return p, nil
}

func (s *restaurantRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	for _, p := range s.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *restaurantRepoStub) GetByQRData(_ context.Context, qrData string) (*entities.RestaurantProfile, error) {
	for _, p := range s.byID {
		if p.QRData == qrData {
			return p, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *restaurantRepoStub) Update(_ context.Context, profile *entities.RestaurantProfile) error {
	s.byID[profile.ID] = profile
	return nil
}

func (s *restaurantRepoStub) SoftDelete(context.Context, uuid.UUID) error { return nil }

func (s *restaurantRepoStub) List(context.Context, int, int) ([]*entities.RestaurantProfile, int64, error) {
	out := make([]*entities.RestaurantProfile, 0, len(s.byID))
	for _, p := range s.byID {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

type settingsRepoStub struct {
	byRestaurant map[uuid.UUID]*entities.RestaurantSettings
}

func newSettingsRepoStub() *settingsRepoStub {
	return &settingsRepoStub{byRestaurant: map[uuid.UUID]*entities.RestaurantSettings{}}
}

func (s *settingsRepoStub) Create(_ context.Context, settings *entities.RestaurantSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	s.byRestaurant[settings.RestaurantID] = settings
	return nil
}

func (s *settingsRepoStub) GetByRestaurantID(_ context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error) {
	st, ok := s.byRestaurant[restaurantID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return st, nil
}

func (s *settingsRepoStub) Update(_ context.Context, settings *entities.RestaurantSettings) error {
	s.byRestaurant[settings.RestaurantID] = settings
	return nil
}

type categoryRepoStub struct {
	byID map[uuid.UUID]*entities.Category
}

func newCategoryRepoStub() *categoryRepoStub {
	return &categoryRepoStub{byID: map[uuid.UUID]*entities.Category{}}
}

func (s *categoryRepoStub) Create(_ context.Context, category *entities.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	s.byID[category.ID] = category
	return nil
}

func (s *categoryRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Category, error) {
	cat, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return cat, nil
}

func (s *categoryRepoStub) Update(_ context.Context, category *entities.Category) error {
	s.byID[category.ID] = category
	return nil
}

func (s *categoryRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *categoryRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID, activeOnly bool) ([]*entities.Category, error) {
	var out []*entities.Category
	for _, cat := range s.byID {
		if cat.RestaurantID != restaurantID {
			continue
		}
		if activeOnly && !cat.IsActive {
			continue
		}
		out = append(out, cat)
	}
	return out, nil
}

type dishRepoStub struct {
	byID map[uuid.UUID]*entities.Dish
}

func newDishRepoStub() *dishRepoStub {
	return &dishRepoStub{byID: map[uuid.UUID]*entities.Dish{}}
}

func (s *dishRepoStub) Create(_ context.Context, dish *entities.Dish) error {
	if dish.ID == uuid.Nil {
		dish.ID = uuid.New()
	}
	s.byID[dish.ID] = dish
	return nil
}

func (s *dishRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Dish, error) {
	d, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return d, nil
}

func (s *dishRepoStub) Update(_ context.Context, dish *entities.Dish) error {
	s.byID[dish.ID] = dish
	return nil
}

func (s *dishRepoStub) SoftDelete(_ context.Context, id uuid.UUID) error {
	delete(s.byID, id)
	return nil
}

func (s *dishRepoStub) ListByCategory(_ context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	var out []*entities.Dish
	for _, d := range s.byID {
		if d.CategoryID != categoryID {
			continue
		}
		if availableOnly && !d.IsAvailable {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *dishRepoStub) ListByRestaurant(_ context.Context, restaurantID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	var out []*entities.Dish
	for _, d := range s.byID {
		if d.RestaurantID != restaurantID {
			continue
		}
		if availableOnly && !d.IsAvailable {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *dishRepoStub) CreateOption(_ context.Context, option *entities.DishOption) error {
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	d, ok := s.byID[option.DishID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	d.Options = append(d.Options, option)
	return nil
}

func (s *dishRepoStub) UpdateOption(_ context.Context, option *entities.DishOption) error {
	d, ok := s.byID[option.DishID]
	if !ok {
		return domainerrors.ErrNotFound
	}
	for i, opt := range d.Options {
		if opt.ID == option.ID {
			d.Options[i] = option
			return nil
		}
	}
	return domainerrors.ErrNotFound
}

func (s *dishRepoStub) DeleteOption(_ context.Context, id uuid.UUID) error {
	for _, d := range s.byID {
		for i, opt := range d.Options {
			if opt.ID == id {
				d.Options = append(d.Options[:i], d.Options[i+1:]...)
				return nil
			}
		}
	}
	return domainerrors.ErrNotFound
}

type orderRepoStub struct {
	byID map[uuid.UUID]*entities.Order
}

func newOrderRepoStub() *orderRepoStub {
	return &orderRepoStub{byID: map[uuid.UUID]*entities.Order{}}
}

func (s *orderRepoStub) Create(_ context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now()
	}
	s.byID[order.ID] = order
	return nil
}

func (s *orderRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.Order, error) {
	o, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return o, nil
}

func (s *orderRepoStub) GetByOrderNumber(_ context.Context, orderNumber string) (*entities.Order, error) {
	for _, o := range s.byID {
		if o.OrderNumber == orderNumber {
			return o, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *orderRepoStub) List(_ context.Context, restaurantID uuid.UUID, _ *entities.OrderFilter, _, _ int) ([]*entities.Order, int64, error) {
	var out []*entities.Order
	for _, o := range s.byID {
		if o.RestaurantID == restaurantID {
			out = append(out, o)
		}
	}
	return out, int64(len(out)), nil
}

func (s *orderRepoStub) UpdateStatus(_ context.Context, id uuid.UUID, expected, next entities.OrderStatus, _ time.Time) error {
	o, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	if o.Status != expected {
		return domainerrors.ErrInvalidTransition
	}
	o.Status = next
	return nil
}

func (s *orderRepoStub) SetPaid(_ context.Context, id uuid.UUID, method entities.PaymentMethod, paidAt time.Time) error {
	o, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	o.IsPaid = true
	o.PaymentMethod = method
	return nil
}

func (s *orderRepoStub) SetUnpaid(_ context.Context, id uuid.UUID) error {
	o, ok := s.byID[id]
	if !ok {
		return domainerrors.ErrNotFound
	}
	o.IsPaid = false
	return nil
}

func (s *orderRepoStub) Stats(_ context.Context, restaurantID uuid.UUID, _ time.Time) (*entities.OrderStats, error) {
	stats := &entities.OrderStats{}
	for _, o := range s.byID {
		if o.RestaurantID != restaurantID {
			continue
		}
		stats.TotalOrders++
		if o.Status == entities.OrderStatusPending {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

func (s *orderRepoStub) GetStalePending(context.Context, uuid.UUID, time.Time, int) ([]*entities.Order, error) {
	return nil, nil
}

type verificationRepoStub struct {
	byID map[uuid.UUID]*entities.RestaurantVerification
}

func newVerificationRepoStub() *verificationRepoStub {
	return &verificationRepoStub{byID: map[uuid.UUID]*entities.RestaurantVerification{}}
}

func (s *verificationRepoStub) Create(_ context.Context, verification *entities.RestaurantVerification) error {
	if verification.ID == uuid.Nil {
		verification.ID = uuid.New()
	}
	s.byID[verification.ID] = verification
	return nil
}

func (s *verificationRepoStub) GetByID(_ context.Context, id uuid.UUID) (*entities.RestaurantVerification, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	return v, nil
}

func (s *verificationRepoStub) GetByUserID(_ context.Context, userID uuid.UUID) (*entities.RestaurantVerification, error) {
	for _, v := range s.byID {
		if v.UserID == userID {
			return v, nil
		}
	}
	return nil, domainerrors.ErrNotFound
}

func (s *verificationRepoStub) Update(_ context.Context, verification *entities.RestaurantVerification, _ entities.VerificationStatus) error {
	if _, ok := s.byID[verification.ID]; !ok {
		return domainerrors.ErrNotFound
	}
	s.byID[verification.ID] = verification
	return nil
}

func (s *verificationRepoStub) List(_ context.Context, filter *entities.VerificationFilter, _, _ int) ([]*entities.RestaurantVerification, int64, error) {
	var out []*entities.RestaurantVerification
	for _, v := range s.byID {
		if filter != nil && filter.Status != "" && v.Status != filter.Status {
			continue
		}
		out = append(out, v)
	}
	return out, int64(len(out)), nil
}

func (s *verificationRepoStub) CountPending(context.Context) (int64, error) {
	var n int64
	for _, v := range s.byID {
		if v.Status == entities.VerificationStatusPending {
			n++
		}
	}
	return n, nil
}
