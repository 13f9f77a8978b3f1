package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"qrmenu.backend/internal/domain/entities"
	"qrmenu.backend/internal/infrastructure/models"
)

// UserRepositoryImpl implements UserRepository
type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepositoryImpl {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:                user.ID,
		Email:             user.Email,
		FirstName:         user.FirstName,
		LastName:          user.LastName,
		PasswordHash:      user.PasswordHash,
		Role:              string(user.Role),
		IsRestaurantOwner: user.IsRestaurantOwner,
		IsVerified:        user.IsVerified,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entities.User) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"first_name":          user.FirstName,
			"last_name":           user.LastName,
			"password_hash":       user.PasswordHash,
			"role":                string(user.Role),
			"is_restaurant_owner": user.IsRestaurantOwner,
			"is_verified":         user.IsVerified,
			"updated_at":          time.Now(),
		}))
}

func (r *UserRepositoryImpl) SetRestaurantOwner(ctx context.Context, id uuid.UUID, owner bool) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_restaurant_owner": owner,
			"updated_at":          time.Now(),
		}))
}

func (r *UserRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.User{}))
}

func (r *UserRepositoryImpl) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.User{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("email LIKE ? OR first_name LIKE ? OR last_name LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.User
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for _, m := range ms {
		model := m
		users = append(users, r.toEntity(&model))
	}
	return users, total, nil
}

func (r *UserRepositoryImpl) toEntity(m *models.User) *entities.User {
	u := &entities.User{
		ID:                m.ID,
		Email:             m.Email,
		FirstName:         m.FirstName,
		LastName:          m.LastName,
		PasswordHash:      m.PasswordHash,
		Role:              entities.UserRole(m.Role),
		IsRestaurantOwner: m.IsRestaurantOwner,
		IsVerified:        m.IsVerified,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		u.DeletedAt = &t
	}
	return u
}
