package support

type TicketRepo interface {
	Upsert(ticket *Ticket) error
	Delete(id string) error
	GetByID(id string) (*Ticket, error)
	List() ([]*Ticket, error)
}

type NoticeRepo interface {
	Upsert(notice *Notice) error
	Delete(id string) error
	GetByID(id string) (*Notice, error)
	List() ([]*Notice, error)
}

type TermRepo interface {
	Upsert(term *Term) error
	Delete(id string) error
	GetByID(id string) (*Term, error)
	List() ([]*Term, error)
}

type FAQRepo interface {
	Upsert(faq *FAQ) error
	Delete(id string) error
	GetByID(id string) (*FAQ, error)
	List() ([]*FAQ, error)
}
