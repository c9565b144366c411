// Package orders models purchases and rental bookings.
package orders

import "time"

// OrderStatus drives the order list tab bar
type OrderStatus string

const (
	OrderPaid       OrderStatus = "결제완료"
	OrderShipping   OrderStatus = "배송중"
	OrderDelivered  OrderStatus = "배송완료"
	OrderCancelled  OrderStatus = "취소"
	OrderRefunded   OrderStatus = "환불완료"
)

type Order struct {
	ID            string      `json:"id,omitempty"`
	OrderNo       string      `json:"order_no,omitempty"` // Human-facing order number
	MemberID      string      `json:"member_id,omitempty"`
	MemberName    string      `json:"member_name,omitempty"`
	ProductID     string      `json:"product_id,omitempty"`
	ProductName   string      `json:"product_name,omitempty"`
	BrandName     string      `json:"brand_name,omitempty"`
	Amount        int         `json:"amount,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	Status        OrderStatus `json:"status,omitempty"`
	OrderedAt     time.Time   `json:"ordered_at,omitempty"`
}

type OrderRepo interface {
	Upsert(order *Order) error
	Delete(id string) error
	GetByID(id string) (*Order, error)
	List() ([]*Order, error)
	SetStatus(id string, status OrderStatus) error
}
