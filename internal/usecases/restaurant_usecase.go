package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"qrmenu.backend/internal/domain/entities"
	domainerrors "qrmenu.backend/internal/domain/errors"
	"qrmenu.backend/internal/domain/repositories"
	"qrmenu.backend/pkg/utils"
)

var percentMax = decimal.NewFromInt(100)

// RestaurantUsecase handles restaurant profile and settings management
type RestaurantUsecase struct {
	restaurantRepo   repositories.RestaurantRepository
	settingsRepo     repositories.SettingsRepository
	verificationRepo repositories.VerificationRepository
	uow              repositories.UnitOfWork
}

// NewRestaurantUsecase creates a new restaurant usecase
func NewRestaurantUsecase(
	restaurantRepo repositories.RestaurantRepository,
	settingsRepo repositories.SettingsRepository,
	verificationRepo repositories.VerificationRepository,
	uow repositories.UnitOfWork,
) *RestaurantUsecase {
	return &RestaurantUsecase{
		restaurantRepo:   restaurantRepo,
		settingsRepo:     settingsRepo,
		verificationRepo: verificationRepo,
		uow:              uow,
	}
}

// GetProfile returns the user's restaurant profile
func (u *RestaurantUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	return u.restaurantRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies owner edits to the profile. Changing a reviewed field
// (name, description, address, phone, email) sends the approved application
// back to the review queue with a marker comment; the restaurant keeps
// operating meanwhile.
func (u *RestaurantUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.RestaurantProfile, error) {
	profile, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.Description = input.Description
	profile.Address = input.Address
	profile.Phone = input.Phone
	profile.Email = input.Email
	profile.Website = input.Website
	profile.TablePrefix = input.TablePrefix

	if input.Currency != "" {
		currency := entities.Currency(input.Currency)
		if !currency.Valid() {
			return nil, domainerrors.ErrInvalidInput
		}
		profile.Currency = currency
	}
	if input.TaxRate != "" {
		rate, err := parsePercent(input.TaxRate)
		if err != nil {
			return nil, err
		}
		profile.TaxRate = rate
	}
	if input.ServiceCharge != "" {
		rate, err := parsePercent(input.ServiceCharge)
		if err != nil {
			return nil, err
		}
		profile.ServiceCharge = rate
	}
	if input.IsActive != nil {
		profile.IsActive = *input.IsActive
	}

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.restaurantRepo.Update(txCtx, profile); err != nil {
			return err
		}
		return u.flagForReReview(txCtx, profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// flagForReReview moves an approved application back to pending when the
// edited profile diverges from the reviewed one.
func (u *RestaurantUsecase) flagForReReview(ctx context.Context, profile *entities.RestaurantProfile) error {
	verification, err := u.verificationRepo.GetByUserID(ctx, profile.UserID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil
		}
		return err
	}
	if verification.Status != entities.VerificationStatusApproved {
		return nil
	}
	if !verification.ProfileFieldsChanged(profile.Name, profile.Description, profile.Address, profile.Phone, profile.Email) {
		return nil
	}

	verification.Name = profile.Name
	verification.Description = profile.Description
	verification.Address = profile.Address
	verification.Phone = profile.Phone
	verification.Email = profile.Email
	verification.Status = entities.VerificationStatusPending
	verification.AdminComment = entities.ReReviewMarker

	return u.verificationRepo.Update(ctx, verification, entities.VerificationStatusApproved)
}

// RegenerateQR replaces the restaurant's QR identifier. Printed codes carrying
// the old identifier stop resolving immediately.
func (u *RestaurantUsecase) RegenerateQR(ctx context.Context, userID uuid.UUID) (*entities.RestaurantProfile, error) {
	profile, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	qrData, err := utils.NewQRData()
	if err != nil {
		return nil, err
	}
	profile.QRData = qrData

	if err := u.restaurantRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// GetSettings returns the restaurant's ordering settings
func (u *RestaurantUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (*entities.RestaurantSettings, error) {
	profile, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.settingsRepo.GetByRestaurantID(ctx, profile.ID)
}

// UpdateSettings applies owner edits to the ordering settings
func (u *RestaurantUsecase) UpdateSettings(ctx context.Context, userID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.RestaurantSettings, error) {
	profile, err := u.restaurantRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	settings, err := u.settingsRepo.GetByRestaurantID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}

	if input.MinOrderAmount != "" {
		amount, err := parseAmount(input.MinOrderAmount)
		if err != nil {
			return nil, err
		}
		settings.MinOrderAmount = amount
	}
	if input.MaxOrderAmount != "" {
		amount, err := parseAmount(input.MaxOrderAmount)
		if err != nil {
			return nil, err
		}
		settings.MaxOrderAmount = amount
	}
	if settings.MinOrderAmount.GreaterThan(settings.MaxOrderAmount) {
		return nil, domainerrors.ErrInvalidInput
	}
	if input.OrderTimeoutMinutes != nil {
		settings.OrderTimeoutMinutes = *input.OrderTimeoutMinutes
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.SMSNotifications != nil {
		settings.SMSNotifications = *input.SMSNotifications
	}

	if err := u.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func parsePercent(raw string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	if rate.IsNegative() || rate.GreaterThan(percentMax) {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	return rate, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	if amount.IsNegative() {
		return decimal.Zero, domainerrors.ErrInvalidInput
	}
	return amount, nil
}
