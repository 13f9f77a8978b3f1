package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/domain/repositories"
	"qrmenu.backend/pkg/utils"
)

// VerificationUsecase handles the restaurant application workflow
type VerificationUsecase struct {
	verificationRepo repositories.VerificationRepository
	restaurantRepo   repositories.RestaurantRepository
	settingsRepo     repositories.SettingsRepository
	userRepo         repositories.UserRepository
	uow              repositories.UnitOfWork
}

// NewVerificationUsecase creates a new verification usecase
func NewVerificationUsecase(
	verificationRepo repositories.VerificationRepository,
	restaurantRepo repositories.RestaurantRepository,
	settingsRepo repositories.SettingsRepository,
	userRepo repositories.UserRepository,
	uow repositories.UnitOfWork,
) *VerificationUsecase {
	return &VerificationUsecase{
		verificationRepo: verificationRepo,
		restaurantRepo:   restaurantRepo,
		settingsRepo:     settingsRepo,
		userRepo:         userRepo,
		uow:              uow,
	}
}

// Submit files or refiles the user's restaurant application. A pending
// application is updated in place; rejected and requires_changes applications
// return to the review queue. Approved applications cannot be resubmitted
// here, the owner edits the live profile instead.
func (u *VerificationUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.SubmitVerificationInput) (*entities.RestaurantVerification, error) {
	existing, err := u.verificationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		verification := &entities.RestaurantVerification{
			ID:           utils.GenerateUUIDv7(),
			UserID:       userID,
			Name:         input.Name,
			Description:  input.Description,
			Address:      input.Address,
			Phone:        input.Phone,
			Email:        input.Email,
			DocumentFile: input.DocumentFile,
			Status:       entities.VerificationStatusPending,
		}
		if err := u.verificationRepo.Create(ctx, verification); err != nil {
			return nil, err
		}
		return verification, nil
	}

	if existing.Status == entities.VerificationStatusApproved {
		return nil, domainerrors.ErrDuplicateApplication
	}
	if existing.Status != entities.VerificationStatusPending &&
		!existing.Status.CanTransitionTo(entities.VerificationStatusPending) {
		return nil, domainerrors.ErrInvalidVerificationTransition
	}

	prev := existing.Status
	existing.Name = input.Name
	existing.Description = input.Description
	existing.Address = input.Address
	existing.Phone = input.Phone
	existing.Email = input.Email
	existing.DocumentFile = input.DocumentFile
	existing.Status = entities.VerificationStatusPending
	existing.AdminComment = ""

	if err := u.verificationRepo.Update(ctx, existing, prev); err != nil {
		return nil, err
	}
	return existing, nil
}

// Status returns the user's application
func (u *VerificationUsecase) Status(ctx context.Context, userID uuid.UUID) (*entities.RestaurantVerification, error) {
	return u.verificationRepo.GetByUserID(ctx, userID)
}

// Approve accepts a pending application. First approval provisions the
// restaurant profile with a fresh QR identifier, default settings, and flips
// the owner flag on the user; re-approval after a profile edit only records
// the decision. Approving an application whose owner already holds a profile
// outside the re-review flow fails with ErrAlreadyProvisioned.
func (u *VerificationUsecase) Approve(ctx context.Context, adminID, verificationID uuid.UUID, comment string) (*entities.RestaurantVerification, error) {
	verification, err := u.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if verification.Status == entities.VerificationStatusApproved {
		return nil, domainerrors.ErrAlreadyProvisioned
	}
	if !verification.Status.CanTransitionTo(entities.VerificationStatusApproved) {
		return nil, domainerrors.ErrInvalidVerificationTransition
	}
	if verification.IsEmpty() {
		return nil, domainerrors.ErrInvalidInput
	}

	prev := verification.Status
	reReview := verification.AdminComment == entities.ReReviewMarker || verification.ReviewedAt.Valid

	verification.Status = entities.VerificationStatusApproved
	verification.AdminComment = comment
	verification.ReviewedBy = uuid.NullUUID{UUID: adminID, Valid: true}
	verification.ReviewedAt = null.TimeFrom(time.Now())

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.verificationRepo.Update(txCtx, verification, prev); err != nil {
			return err
		}

		_, err := u.restaurantRepo.GetByUserID(txCtx, verification.UserID)
		if err == nil {
			if reReview {
				// Profile already provisioned, the owner's edits were re-reviewed.
				return nil
			}
			return domainerrors.ErrAlreadyProvisioned
		}
		if !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}

		qrData, err := utils.NewQRData()
		if err != nil {
			return err
		}
		profile := &entities.RestaurantProfile{
			ID:          utils.GenerateUUIDv7(),
			UserID:      verification.UserID,
			Name:        verification.Name,
			Description: verification.Description,
			Address:     verification.Address,
			Phone:       verification.Phone,
			Email:       verification.Email,
			Currency:    entities.CurrencyRUB,
			QRData:      qrData,
			IsActive:    true,
		}
		if err := u.restaurantRepo.Create(txCtx, profile); err != nil {
			return err
		}

		settings := entities.DefaultRestaurantSettings(profile.ID)
		settings.ID = utils.GenerateUUIDv7()
		if err := u.settingsRepo.Create(txCtx, settings); err != nil {
			return err
		}

		return u.userRepo.SetRestaurantOwner(txCtx, verification.UserID, true)
	})
	if err != nil {
		return nil, err
	}
	return verification, nil
}

// Reject declines a pending application with a final decision
func (u *VerificationUsecase) Reject(ctx context.Context, adminID, verificationID uuid.UUID, comment string) (*entities.RestaurantVerification, error) {
	verification, err := u.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if !verification.Status.CanTransitionTo(entities.VerificationStatusRejected) {
		return nil, domainerrors.ErrInvalidVerificationTransition
	}

	prev := verification.Status
	verification.Status = entities.VerificationStatusRejected
	verification.AdminComment = comment
	verification.ReviewedBy = uuid.NullUUID{UUID: adminID, Valid: true}
	verification.ReviewedAt = null.TimeFrom(time.Now())

	if err := u.verificationRepo.Update(ctx, verification, prev); err != nil {
		return nil, err
	}
	return verification, nil
}

// RequestChanges sends a pending application back to the applicant.
// Not a final decision: ReviewedAt is left untouched.
func (u *VerificationUsecase) RequestChanges(ctx context.Context, adminID, verificationID uuid.UUID, comment string) (*entities.RestaurantVerification, error) {
	verification, err := u.verificationRepo.GetByID(ctx, verificationID)
	if err != nil {
		return nil, err
	}
	if !verification.Status.CanTransitionTo(entities.VerificationStatusRequiresChanges) {
		return nil, domainerrors.ErrInvalidVerificationTransition
	}

	prev := verification.Status
	verification.Status = entities.VerificationStatusRequiresChanges
	verification.AdminComment = comment
	verification.ReviewedBy = uuid.NullUUID{UUID: adminID, Valid: true}

	if err := u.verificationRepo.Update(ctx, verification, prev); err != nil {
		return nil, err
	}
	return verification, nil
}

// List returns applications for the admin review queue
func (u *VerificationUsecase) List(ctx context.Context, filter *entities.VerificationFilter, limit, offset int) ([]*entities.RestaurantVerification, int64, error) {
	return u.verificationRepo.List(ctx, filter, limit, offset)
}

// CountPending returns the review queue size
func (u *VerificationUsecase) CountPending(ctx context.Context) (int64, error) {
	return u.verificationRepo.CountPending(ctx)
}
