package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Currency represents supported display currencies
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyKZT Currency = "KZT"
)

var currencySymbols = map[Currency]string{
	CurrencyRUB: "₽",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyKZT: "₸",
}

// Symbol returns the display symbol for the currency
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// Valid reports whether the currency is one of the supported codes
func (c Currency) Valid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// RestaurantProfile represents a verified restaurant. One per user.
// TaxRate and ServiceCharge are percentages in [0,100] consumed by the
// pricing calculator.
type RestaurantProfile struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"userId"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Email         string          `json:"email,omitempty"`
	Website       string          `json:"website,omitempty"`
	Currency      Currency        `json:"currency"`
	TaxRate       decimal.Decimal `json:"taxRate"`
	ServiceCharge decimal.Decimal `json:"serviceCharge"`
	TablePrefix   string          `json:"tablePrefix"`
	QRData        string          `json:"qrData"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     *time.Time      `json:"-"`
}

// MenuPath returns the public menu path served for this restaurant's QR code
func (r *RestaurantProfile) MenuPath() string {
	return "/m/" + r.QRData
}

// RestaurantSettings holds per-restaurant ordering settings, provisioned with
// defaults alongside the profile on verification approval.
type RestaurantSettings struct {
	ID                  uuid.UUID       `json:"id"`
	RestaurantID        uuid.UUID       `json:"restaurantId"`
	MinOrderAmount      decimal.Decimal `json:"minOrderAmount"`
	MaxOrderAmount      decimal.Decimal `json:"maxOrderAmount"`
	OrderTimeoutMinutes int             `json:"orderTimeoutMinutes"`
	EmailNotifications  bool            `json:"emailNotifications"`
	SMSNotifications    bool            `json:"smsNotifications"`
	CreatedAt           time.Time       `json:"createdAt"`
	UpdatedAt           time.Time       `json:"updatedAt"`
}

// DefaultRestaurantSettings returns the settings created for a freshly
// provisioned restaurant.
func DefaultRestaurantSettings(restaurantID uuid.UUID) *RestaurantSettings {
	return &RestaurantSettings{
		RestaurantID:        restaurantID,
		MinOrderAmount:      decimal.Zero,
		MaxOrderAmount:      decimal.RequireFromString("999999.99"),
		OrderTimeoutMinutes: 30,
		EmailNotifications:  true,
		SMSNotifications:    false,
	}
}

// UpdateProfileInput represents owner edits to the restaurant profile
type UpdateProfileInput struct {
	Name          string `json:"name" binding:"required,min=2,max=200"`
	Description   string `json:"description"`
	Address       string `json:"address" binding:"required"`
	Phone         string `json:"phone" binding:"required,min=5,max=17"`
	Email         string `json:"email" binding:"omitempty,email"`
	Website       string `json:"website" binding:"omitempty,url"`
	Currency      string `json:"currency"`
	TaxRate       string `json:"taxRate"`
	ServiceCharge string `json:"serviceCharge"`
	TablePrefix   string `json:"tablePrefix"`
	IsActive      *bool  `json:"isActive"`
}

// UpdateSettingsInput represents owner edits to the restaurant settings
type UpdateSettingsInput struct {
	MinOrderAmount      string `json:"minOrderAmount"`
	MaxOrderAmount      string `json:"maxOrderAmount"`
	OrderTimeoutMinutes *int   `json:"orderTimeoutMinutes" binding:"omitempty,min=1,max=1440"`
	EmailNotifications  *bool  `json:"emailNotifications"`
	SMSNotifications    *bool  `json:"smsNotifications"`
}
