package orders

import "time"

// RentalStatus drives the rental schedule tab bar
type RentalStatus string

const (
	RentalRequested RentalStatus = "신청완료"
	RentalShipping  RentalStatus = "배송중"
	RentalInUse     RentalStatus = "사용중"
	RentalReturned  RentalStatus = "반납완료"
	RentalCancelled RentalStatus = "취소"
)

// Period is the rental window
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Days returns the length of the rental window in whole days.
func (p Period) Days() int {
	return int(p.End.Sub(p.Start).Hours() / 24)
}

type Rental struct {
	ID          string       `json:"id,omitempty"`
	RentalNo    string       `json:"rental_no,omitempty"`
	MemberID    string       `json:"member_id,omitempty"`
	MemberName  string       `json:"member_name,omitempty"`
	ProductID   string       `json:"product_id,omitempty"`
	ProductName string       `json:"product_name,omitempty"`
	BrandName   string       `json:"brand_name,omitempty"`
	SizeLabel   string       `json:"size_label,omitempty"`
	Period      Period       `json:"period"`
	Status      RentalStatus `json:"status,omitempty"`
	CreatedAt   time.Time    `json:"created_at,omitempty"`
}

type RentalRepo interface {
	Upsert(rental *Rental) error
	Delete(id string) error
	GetByID(id string) (*Rental, error)
	List() ([]*Rental, error)
	SetStatus(id string, status RentalStatus) error
}
