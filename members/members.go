// Package members models platform customers as the back-office sees them.
package members

import "time"

// GradeType is the customer tier shown on the user list page
type GradeType string

const (
	GradeNormal GradeType = "일반"
	GradeGold   GradeType = "우수"
	GradeVIP    GradeType = "VIP"
)

// StatusType is the account state used by the user list tab bar
type StatusType string

const (
	StatusActive   StatusType = "정상"
	StatusDormant  StatusType = "휴면"
	StatusWithdraw StatusType = "탈퇴"
)

type Member struct {
	ID            string     `json:"id,omitempty"`
	Email         string     `json:"email,omitempty"`
	Name          string     `json:"name,omitempty"`
	Nickname      string     `json:"nickname,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Instagram     string     `json:"instagram,omitempty"` // Handle used for influencer vetting
	Grade         GradeType  `json:"grade,omitempty"`
	Status        StatusType `json:"status,omitempty"`
	Membership    string     `json:"membership,omitempty"` // Subscription plan name, empty if none
	SignedUpAt    time.Time  `json:"signed_up_at,omitempty"`
	LastLoginAt   time.Time  `json:"last_login_at,omitempty"`
	RentalCount   int        `json:"rental_count,omitempty"`
	PurchaseCount int        `json:"purchase_count,omitempty"`
}

type Repo interface {
	Upsert(member *Member) error
	Delete(id string) error
	GetByID(id string) (*Member, error)
	GetByEmail(email string) (*Member, error)
	List() ([]*Member, error)
}
