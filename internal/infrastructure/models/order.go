package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	RestaurantID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber     string          `gorm:"type:varchar(30);uniqueIndex;not null"`
	CustomerName    *string         `gorm:"type:varchar(100)"`
	CustomerPhone   *string         `gorm:"type:varchar(20)"`
	CustomerEmail   *string         `gorm:"type:varchar(255)"`
	TableNumber     *string         `gorm:"type:varchar(20)"`
	Status          string          `gorm:"type:varchar(20);not null;index;default:'pending'"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ServiceAmount   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod   string          `gorm:"type:varchar(20)"`
	IsPaid          bool            `gorm:"not null;default:false;index"`
	PaidAt          *time.Time
	SpecialRequests string `gorm:"type:text"`
	QRData          string `gorm:"column:qr_data;type:varchar(50);not null"`
	ConfirmedAt     *time.Time
	CompletedAt     *time.Time
	CancelledAt     *time.Time
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	OrderID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DishID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	DishName        string          `gorm:"type:varchar(200);not null"`
	Quantity        int             `gorm:"not null"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SelectedOptions string          `gorm:"type:jsonb;default:'[]'"`
	SpecialRequests string          `gorm:"type:text"`
	CreatedAt       time.Time
}
