package model

import "time"

type UserProfile struct {
	UserID   string `gorm:"primaryKey;size:64;not null"`
	FullName string `gorm:"size:128"`
	Email    string `gorm:"size:128;index"`
	Phone    string `gorm:"size:32"`

	CountryCode  string `gorm:"size:8"` // ISO code, e.g. ZA
	CountryName  string `gorm:"size:64"`
	ProvinceCode string `gorm:"size:8"`
	ProvinceName string `gorm:"size:64"`

	AddressStreet     string `gorm:"size:256"`
	AddressCity       string `gorm:"size:128"`
	AddressPostalCode string `gorm:"size:32"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type PaymentMethod struct {
	ID     string `gorm:"primaryKey;size:64;not null"`
	UserID string `gorm:"size:64;index;not null"`
	Type   string `gorm:"size:16;not null"` // card, cash

	HolderName        string `gorm:"size:128"`
	Brand             string `gorm:"size:32"` // Visa, Mastercard, American Express, Discover, Maestro, Unknown
	Last4             string `gorm:"size:4"`
	Expiry            string `gorm:"size:8"` // MM/YY
	BillingPostalCode string `gorm:"size:32"`
	IsDefault         bool   `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Order struct {
	OrderID string `gorm:"primaryKey;size:64;not null"`
	UserID  string `gorm:"size:64;index"`
	Status  string `gorm:"size:32;index;not null"` // Processing

	// amounts in minor units (cents)
	Subtotal int64 `gorm:"not null"`
	Shipping int64 `gorm:"not null"`
	Tax      int64 `gorm:"not null"`
	Total    int64 `gorm:"not null"`

	PaymentMethod   string `gorm:"size:16;not null"` // card, cash
	PaymentMethodID string `gorm:"size:64"`

	CustomerFullName   string `gorm:"size:128"`
	CustomerEmail      string `gorm:"size:128"`
	CustomerPhone      string `gorm:"size:32"`
	CustomerAddress    string `gorm:"size:256"`
	CustomerCity       string `gorm:"size:128"`
	CustomerPostalCode string `gorm:"size:32"`
	CustomerCountry    string `gorm:"size:64"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderItem struct {
	ID uint `gorm:"primaryKey"`
	// FK → order.order_id
	OrderID   string `gorm:"size:64;index;not null"`
	ProductID string `gorm:"size:64;index;not null"`
	Name      string `gorm:"size:256"`
	Quantity  int32  `gorm:"not null"`
	UnitPrice int64  `gorm:"not null"`
	Image     string `gorm:"size:512"`

	CreatedAt time.Time
}
