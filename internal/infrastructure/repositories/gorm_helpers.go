package repositories

import (
	"errors"

	"gorm.io/gorm"
	domainerrors "qrmenu.backend/internal/domain/errors"
)

// translateNotFound maps gorm's record-not-found to the domain sentinel
func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	return err
}

// translateDuplicate maps a unique constraint violation to the given domain
// sentinel. Relies on TranslateError being enabled on the gorm config.
func translateDuplicate(err, sentinel error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return sentinel
	}
	return err
}

// checkAffected converts a zero-row update or delete into ErrNotFound
func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
