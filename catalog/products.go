// Package catalog models the rental catalog: products and the brands that
// supply them.
package catalog

import (
	"time"
)

// RegistrationStatus drives the tab bar of the product list page
type RegistrationStatus string

const (
	StatusRegistered RegistrationStatus = "등록완료"
	StatusPending    RegistrationStatus = "등록대기"
	StatusCancelled  RegistrationStatus = "등록취소"
)

// Size is one garment size row. Measurements are keyed by the size guide
// field keys of the product's category (see package sizeguide), so edited
// labels round-trip into the saved entity unchanged.
type Size struct {
	Label        string             `json:"label"` // e.g. "44", "55", "FREE"
	Measurements map[string]float64 `json:"measurements,omitempty"`
}

type Product struct {
	ID           string             `json:"id,omitempty"`
	ProductNo    string             `json:"product_no,omitempty"` // Styling code printed on the tag
	BrandID      string             `json:"brand_id,omitempty"`
	BrandName    string             `json:"brand_name,omitempty"`
	Name         string             `json:"name,omitempty"`
	Category     string             `json:"category,omitempty"` // Size guide lookup key
	Color        string             `json:"color,omitempty"`
	Status       RegistrationStatus `json:"status,omitempty"`
	RetailPrice  int                `json:"retail_price,omitempty"`
	RentalPrice  int                `json:"rental_price,omitempty"`
	Fabric       string             `json:"fabric,omitempty"` // Material composition text
	Sizes        []Size             `json:"sizes,omitempty"`
	RegisteredAt time.Time          `json:"registered_at,omitempty"`
}

type ProductRepo interface {
	Upsert(product *Product) error
	Delete(id string) error
	GetByID(id string) (*Product, error)
	List() ([]*Product, error)
	SetStatus(id string, status RegistrationStatus) error
}
