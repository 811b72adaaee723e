package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus tracks the sale lifecycle of a listing.
// The only transition is available -> sold, made exactly once by the
// payment cascade.
type ProductStatus string

const (
	ProductAvailable ProductStatus = "available"
	ProductSold      ProductStatus = "sold"
)

// Product is a second-hand listing owned by the seller identified
// by SellerEmail. Ownership checks compare SellerEmail against the
// authenticated email, independent of the seller role check.
type Product struct {
	ID            uuid.UUID     `json:"id" db:"id"`
	CategoryID    uuid.UUID     `json:"category_id" db:"category_id"`
	SellerEmail   string        `json:"seller_email" db:"seller_email"`
	Name          string        `json:"name" db:"name"`
	Description   string        `json:"description" db:"description"`
	Location      string        `json:"location" db:"location"`
	Price         float64       `json:"price" db:"price"`
	OriginalPrice float64       `json:"original_price" db:"original_price"`
	YearsUsed     int           `json:"years_used" db:"years_used"`
	Condition     string        `json:"condition" db:"condition"`
	Phone         string        `json:"phone" db:"phone"`
	ImageURL      string        `json:"image_url" db:"image_url"`
	Status        ProductStatus `json:"status" db:"status"`
	Advertise     bool          `json:"advertise" db:"advertise"`
	Reported      bool          `json:"reported" db:"reported"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}
