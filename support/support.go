// Package support models customer tickets and the static content the
// back-office publishes: notices, terms, FAQ entries.
package support

import "time"

// TicketStatus drives the ticket list tab bar
type TicketStatus string

const (
	TicketOpen     TicketStatus = "접수"
	TicketHandling TicketStatus = "처리중"
	TicketClosed   TicketStatus = "완료"
)

type Ticket struct {
	ID         string       `json:"id,omitempty"`
	MemberID   string       `json:"member_id,omitempty"`
	MemberName string       `json:"member_name,omitempty"`
	Category   string       `json:"category,omitempty"` // e.g. "배송", "결제", "상품"
	Title      string       `json:"title,omitempty"`
	Content    string       `json:"content,omitempty"`
	Status     TicketStatus `json:"status,omitempty"`
	Answer     string       `json:"answer,omitempty"`
	CreatedAt  time.Time    `json:"created_at,omitempty"`
	AnsweredAt time.Time    `json:"answered_at,omitempty"`
}

// NoticeCategory drives the notice list tab bar
type NoticeCategory string

const (
	NoticeGeneral NoticeCategory = "공지"
	NoticeGuide   NoticeCategory = "안내"
)

type Notice struct {
	ID        string         `json:"id,omitempty"`
	Category  NoticeCategory `json:"category,omitempty"`
	Title     string         `json:"title,omitempty"`
	Content   string         `json:"content,omitempty"`
	Author    string         `json:"author,omitempty"`
	Posted    bool           `json:"posted"`
	CreatedAt time.Time      `json:"created_at,omitempty"`
}

// TermCategory splits the policy documents list
type TermCategory string

const (
	TermService TermCategory = "이용약관"
	TermPrivacy TermCategory = "개인정보처리방침"
)

type Term struct {
	ID          string       `json:"id,omitempty"`
	Category    TermCategory `json:"category,omitempty"`
	Title       string       `json:"title,omitempty"`
	Content     string       `json:"content,omitempty"`
	Version     string       `json:"version,omitempty"`
	EffectiveAt time.Time    `json:"effective_at,omitempty"`
}

type FAQ struct {
	ID        string    `json:"id,omitempty"`
	Category  string    `json:"category,omitempty"` // e.g. "이용방법", "결제", "반납"
	Question  string    `json:"question,omitempty"`
	Answer    string    `json:"answer,omitempty"`
	Posted    bool      `json:"posted"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}
