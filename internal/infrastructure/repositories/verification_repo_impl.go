package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"qrmenu.backend/internal/domain/entities"
	domainErrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/infrastructure/models"
)

// VerificationRepositoryImpl implements VerificationRepository
type VerificationRepositoryImpl struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) *VerificationRepositoryImpl {
	return &VerificationRepositoryImpl{db: db}
}

func (r *VerificationRepositoryImpl) Create(ctx context.Context, verification *entities.RestaurantVerification) error {
	m := &models.RestaurantVerification{
		ID:           verification.ID,
		UserID:       verification.UserID,
		Name:         verification.Name,
		Description:  verification.Description,
		Address:      verification.Address,
		Phone:        verification.Phone,
		Email:        verification.Email,
		DocumentFile: verification.DocumentFile,
		Status:       string(verification.Status),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	verification.ID = m.ID
	return nil
}

func (r *VerificationRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*entities.RestaurantVerification, error) {
	var m models.RestaurantVerification
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

func (r *VerificationRepositoryImpl) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.RestaurantVerification, error) {
	var m models.RestaurantVerification
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		return nil, translateNotFound(err)
	}
	return r.toEntity(&m), nil
}

// Update writes the application guarded by the status the caller read. The row
// moves only if it still holds the expected status, so two reviewers deciding
// the same application cannot both win: the loser's write touches zero rows
// and surfaces ErrInvalidVerificationTransition.
func (r *VerificationRepositoryImpl) Update(ctx context.Context, verification *entities.RestaurantVerification, expected entities.VerificationStatus) error {
	var reviewedBy interface{}
	if verification.ReviewedBy.Valid {
		reviewedBy = verification.ReviewedBy.UUID
	}
	var reviewedAt interface{}
	if verification.ReviewedAt.Valid {
		reviewedAt = verification.ReviewedAt.Time
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantVerification{}).
		Where("id = ? AND status = ?", verification.ID, string(expected)).
		Updates(map[string]interface{}{
			"name":          verification.Name,
			"description":   verification.Description,
			"address":       verification.Address,
			"phone":         verification.Phone,
			"email":         verification.Email,
			"document_file": verification.DocumentFile,
			"status":        string(verification.Status),
			"admin_comment": verification.AdminComment,
			"reviewed_by":   reviewedBy,
			"reviewed_at":   reviewedAt,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainErrors.ErrInvalidVerificationTransition
	}
	return nil
}

func (r *VerificationRepositoryImpl) List(ctx context.Context, filter *entities.VerificationFilter, limit, offset int) ([]*entities.RestaurantVerification, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantVerification{})
	if filter != nil && filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.RestaurantVerification
	if err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	verifications := make([]*entities.RestaurantVerification, 0, len(ms))
	for _, m := range ms {
		model := m
		verifications = append(verifications, r.toEntity(&model))
	}
	return verifications, total, nil
}

func (r *VerificationRepositoryImpl) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.RestaurantVerification{}).
		Where("status = ?", string(entities.VerificationStatusPending)).
		Count(&count).Error
	return count, err
}

func (r *VerificationRepositoryImpl) toEntity(m *models.RestaurantVerification) *entities.RestaurantVerification {
	v := &entities.RestaurantVerification{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Description:  m.Description,
		Address:      m.Address,
		Phone:        m.Phone,
		Email:        m.Email,
		DocumentFile: m.DocumentFile,
		Status:       entities.VerificationStatus(m.Status),
		AdminComment: m.AdminComment,
		ReviewedAt:   null.TimeFromPtr(m.ReviewedAt),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.ReviewedBy != nil {
		v.ReviewedBy = uuid.NullUUID{UUID: *m.ReviewedBy, Valid: true}
	}
	return v
}
