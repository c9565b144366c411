package catalog

import "time"

// ContractType is how a brand supplies stock
type ContractType string

const (
	ContractConsignment ContractType = "위탁"
	ContractPurchase    ContractType = "직매입"
)

// BrandStatus drives the brand list tab bar
type BrandStatus string

const (
	BrandActive BrandStatus = "계약중"
	BrandEnded  BrandStatus = "계약종료"
)

type Brand struct {
	ID           string       `json:"id,omitempty"`
	Name         string       `json:"name,omitempty"`    // Brand label, e.g. "SANDRO"
	Company      string       `json:"company,omitempty"` // Supplying company
	Manager      string       `json:"manager,omitempty"` // Contact person
	Phone        string       `json:"phone,omitempty"`
	Contract     ContractType `json:"contract,omitempty"`
	Status       BrandStatus  `json:"status,omitempty"`
	ProductCount int          `json:"product_count,omitempty"`
	RegisteredAt time.Time    `json:"registered_at,omitempty"`
}

type BrandRepo interface {
	Upsert(brand *Brand) error
	Delete(id string) error
	GetByID(id string) (*Brand, error)
	List() ([]*Brand, error)
}
