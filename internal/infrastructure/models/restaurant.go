package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type RestaurantProfile struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Description   string          `gorm:"type:text"`
	Address       string          `gorm:"type:text;not null"`
	Phone         string          `gorm:"type:varchar(20);not null"`
	Email         string          `gorm:"type:varchar(255)"`
	Website       string          `gorm:"type:varchar(255)"`
	Currency      string          `gorm:"type:varchar(3);not null;default:'RUB'"`
	TaxRate       decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ServiceCharge decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	TablePrefix   string          `gorm:"type:varchar(10);default:'T'"`
	QRData        string          `gorm:"column:qr_data;type:varchar(50);uniqueIndex;not null"`
	IsActive      bool            `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

type RestaurantSettings struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RestaurantID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	MinOrderAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MaxOrderAmount      decimal.Decimal `gorm:"type:decimal(12,2);not null;default:999999.99"`
	OrderTimeoutMinutes int             `gorm:"not null;default:30"`
	EmailNotifications  bool            `gorm:"not null;default:true"`
	SMSNotifications    bool            `gorm:"column:sms_notifications;not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (RestaurantSettings) TableName() string {
	return "restaurant_settings"
}
