package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"qrmenu.backend/internal/domain/entities"
	"qrmenu.backend/internal/infrastructure/models"
)

// RestaurantRepositoryImpl implements RestaurantRepository
type RestaurantRepositoryImpl struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepositoryImpl {
	return &RestaurantRepositoryImpl{db: db}
}

func (r *RestaurantRepositoryImpl) Create(ctx context.Context, profile *entities.RestaurantProfile) error {
	m := &models.RestaurantProfile{
		ID:            profile.ID,
		UserID:        profile.UserID,
		Name:          profile.Name,
		Description:   profile.Description,
		Address:       profile.Address,
		Phone:         profile.Phone,
		Email:         profile.Email,
		Website:       profile.Website,
		Currency:      string(profile.Currency),
		TaxRate:       profile.TaxRate,
		ServiceCharge: profile.ServiceCharge,
		TablePrefix:   profile.TablePrefix,
		QRData:        profile.QRData,
		IsActive:      profile.IsActive,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	profile.ID = m.ID
	return nil
}

func (r *RestaurantRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantProfile, error) {
	var m models.RestaurantProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *RestaurantRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	var m models.RestaurantProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *RestaurantRepositoryImpl) GetByQRData(ctx context.Context, qrData string) (*entities.RestaurantProfile, error) {
	var m models.RestaurantProfile
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("qr_data = ?", qrData).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *RestaurantRepositoryImpl) Update(ctx context.Context, profile *entities.RestaurantProfile) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"name":           profile.Name,
			"description":    profile.Description,
			"address":        profile.Address,
			"phone":          profile.Phone,
			"email":          profile.Email,
			"website":        profile.Website,
			"currency":       string(profile.Currency),
			"tax_rate":       profile.TaxRate,
			"service_charge": profile.ServiceCharge,
			"table_prefix":   profile.TablePrefix,
			"is_active":      profile.IsActive,
			"updated_at":     time.Now(),
		}))
}

func (r *RestaurantRepositoryImpl) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).Delete(&models.RestaurantProfile{}))
}

func (r *RestaurantRepositoryImpl) List(ctx context.Context, limit, offset int) ([]*entities.RestaurantProfile, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantProfile{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.RestaurantProfile
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	profiles := make([]*entities.RestaurantProfile, 0, len(ms))
	for _, m := range ms {
		model := m
		profiles = append(profiles, r.toEntity(&model))
	}
	return profiles, total, nil
}

func (r *RestaurantRepositoryImpl) toEntity(m *models.RestaurantProfile) *entities.RestaurantProfile {
	p := &entities.RestaurantProfile{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Description:   m.Description,
		Address:       m.Address,
		Phone:         m.Phone,
		Email:         m.Email,
		Website:       m.Website,
		Currency:      entities.Currency(m.Currency),
		TaxRate:       m.TaxRate,
		ServiceCharge: m.ServiceCharge,
		TablePrefix:   m.TablePrefix,
		QRData:        m.QRData,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.DeletedAt.Valid {
		t := m.DeletedAt.Time
		p.DeletedAt = &t
	}
	return p
}

// SettingsRepositoryImpl implements SettingsRepository
type SettingsRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepositoryImpl {
	return &SettingsRepositoryImpl{db: db}
}

func (r *SettingsRepositoryImpl) Create(ctx context.Context, settings *entities.RestaurantSettings) error {
	m := &models.RestaurantSettings{
		ID:                  settings.ID,
		RestaurantID:        settings.RestaurantID,
		MinOrderAmount:      settings.MinOrderAmount,
		MaxOrderAmount:      settings.MaxOrderAmount,
		OrderTimeoutMinutes: settings.OrderTimeoutMinutes,
		EmailNotifications:  settings.EmailNotifications,
		SMSNotifications:    settings.SMSNotifications,
		CreatedAt:           time.Now(),
		UpdatedAt:           time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	settings.ID = m.ID
	return nil
}

func (r *SettingsRepositoryImpl) GetByRestaurantID(ctx context.Context, restaurantID uuid.UUID) (*entities.RestaurantSettings, error) {
	var m models.RestaurantSettings
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("restaurant_id = ?", restaurantID).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return &entities.RestaurantSettings{
		ID:                  m.ID,
		RestaurantID:        m.RestaurantID,
		MinOrderAmount:      m.MinOrderAmount,
		MaxOrderAmount:      m.MaxOrderAmount,
		OrderTimeoutMinutes: m.OrderTimeoutMinutes,
		EmailNotifications:  m.EmailNotifications,
		SMSNotifications:    m.SMSNotifications,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}, nil
}

func (r *SettingsRepositoryImpl) Update(ctx context.Context, settings *entities.RestaurantSettings) error {
	return checkAffected(GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantSettings{}).
		Where("restaurant_id = ?", settings.RestaurantID).
		Updates(map[string]interface{}{
			"min_order_amount":      settings.MinOrderAmount,
			"max_order_amount":      settings.MaxOrderAmount,
			"order_timeout_minutes": settings.OrderTimeoutMinutes,
			"email_notifications":   settings.EmailNotifications,
			"sms_notifications":     settings.SMSNotifications,
			"updated_at":            time.Now(),
		}))
}
