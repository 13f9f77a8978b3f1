package models

import (
	"time"

	"github.com/google/uuid"
)

type RestaurantVerification struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Name         string    `gorm:"type:varchar(200)"`
	Description  string    `gorm:"type:text"`
	Address      string    `gorm:"type:text"`
	Phone        string    `gorm:"type:varchar(20)"`
	Email        string    `gorm:"type:varchar(255)"`
	DocumentFile string    `gorm:"type:varchar(500)"`
	Status       string    `gorm:"type:varchar(20);not null;index;default:'pending'"`
	AdminComment string    `gorm:"type:text"`
	ReviewedBy   *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
