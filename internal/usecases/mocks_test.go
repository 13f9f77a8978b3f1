package usecases_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"qrmenu.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) SetRestaurantOwner(ctx context.Context, id uuid.UUID, owner bool) error {
	return m.Called(ctx, id, owner).Error(0)
}

func (m *MockUserRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

// Mock RestaurantRepository
type MockRestaurantRepository struct {
	mock.Mock
}

func (m *MockRestaurantRepository) Create(ctx context.Context, profile *entities.RestaurantProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockRestaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantProfile), args.Error(1)
}

func (m *MockRestaurantRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantProfile), args.Error(1)
}

func (m *MockRestaurantRepository) GetByQRData(ctx context.Context, qrData string) (*entities.RestaurantProfile, error) {
	args := m.Called(ctx, qrData)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantProfile), args.Error(1)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, profile *entities.RestaurantProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockRestaurantRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRestaurantRepository) List(ctx context.Context, limit, offset int) ([]*entities.RestaurantProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.RestaurantProfile), args.Get(1).(int64), args.Error(2)
}

// Mock SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Create(ctx context.Context, settings *entities.RestaurantSettings) error {
	return m.Called(ctx, settings).Error(0)
}

func (m *MockSettingsRepository) GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantSettings), args.Error(1)
}

func (m *MockSettingsRepository) Update(ctx context.Context, settings *entities.RestaurantSettings) error {
	return m.Called(ctx, settings).Error(0)
}

// Mock CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *entities.Category) error {
	return m.Called(ctx, category).Error(0)
}

func (m *MockCategoryRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCategoryRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, activeOnly bool) ([]*entities.Category, error) {
	args := m.Called(ctx, restaurantID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

// Mock DishRepository
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *entities.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Dish, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Dish), args.Error(1)
}

func (m *MockDishRepository) Update(ctx context.Context, dish *entities.Dish) error {
	return m.Called(ctx, dish).Error(0)
}

func (m *MockDishRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDishRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	args := m.Called(ctx, categoryID, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Dish), args.Error(1)
}

func (m *MockDishRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, availableOnly bool) ([]*entities.Dish, error) {
	args := m.Called(ctx, restaurantID, availableOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Dish), args.Error(1)
}

func (m *MockDishRepository) CreateOption(ctx context.Context, option *entities.DishOption) error {
	return m.Called(ctx, option).Error(0)
}

func (m *MockDishRepository) UpdateOption(ctx context.Context, option *entities.DishOption) error {
	return m.Called(ctx, option).Error(0)
}

func (m *MockDishRepository) DeleteOption(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// Mock OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entities.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *MockOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNumber(ctx context.Context, orderNumber string) (*entities.Order, error) {
	args := m.Called(ctx, orderNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, restaurantID uuid.UUID, filter *entities.OrderFilter, limit, offset int) ([]*entities.Order, int64, error) {
	args := m.Called(ctx, restaurantID, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Order), args.Get(1).(int64), args.Error(2)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, expected, next entities.OrderStatus, stamp time.Time) error {
	return m.Called(ctx, id, expected, next, stamp).Error(0)
}

func (m *MockOrderRepository) SetPaid(ctx context.Context, id uuid.UUID, method entities.PaymentMethod, paidAt time.Time) error {
	return m.Called(ctx, id, method, paidAt).Error(0)
}

func (m *MockOrderRepository) SetUnpaid(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) Stats(ctx context.Context, restaurantID uuid.UUID, dayStart time.Time) (*entities.OrderStats, error) {
	args := m.Called(ctx, restaurantID, dayStart)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderStats), args.Error(1)
}

func (m *MockOrderRepository) GetStalePending(ctx context.Context, restaurantID uuid.UUID, cutoff time.Time, limit int) ([]*entities.Order, error) {
	args := m.Called(ctx, restaurantID, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

// Mock VerificationRepository
type MockVerificationRepository struct {
	mock.Mock
}

func (m *MockVerificationRepository) Create(ctx context.Context, verification *entities.RestaurantVerification) error {
	return m.Called(ctx, verification).Error(0)
}

func (m *MockVerificationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantVerification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantVerification), args.Error(1)
}

func (m *MockVerificationRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.RestaurantVerification), args.Error(1)
}

func (m *MockVerificationRepository) Update(ctx context.Context, verification *entities.RestaurantVerification, expected entities.VerificationStatus) error {
	return m.Called(ctx, verification, expected).Error(0)
}

func (m *MockVerificationRepository) List(ctx context.Context, filter *entities.VerificationFilter, limit, offset int) ([]*entities.RestaurantVerification, int64, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.RestaurantVerification), args.Get(1).(int64), args.Error(2)
}

func (m *MockVerificationRepository) CountPending(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
