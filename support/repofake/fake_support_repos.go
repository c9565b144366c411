package fakesupportrepo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/support"
)

var _ support.TicketRepo = (*FakeTicketRepo)(nil)

type FakeTicketRepo struct {
	tickets map[string]*support.Ticket
	lock    sync.RWMutex
}

func NewFakeTicketRepo() *FakeTicketRepo {
	return &FakeTicketRepo{tickets: make(map[string]*support.Ticket)}
}

func (tr *FakeTicketRepo) Upsert(ticket *support.Ticket) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if ticket.ID == "" {
		ticket.ID = uuid.New().String()
	}
	tr.tickets[ticket.ID] = ticket
	return nil
}

func (tr *FakeTicketRepo) Delete(id string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if _, ok := tr.tickets[id]; !ok {
		return errs.ErrNotFound
	}
	delete(tr.tickets, id)
	return nil
}

func (tr *FakeTicketRepo) GetByID(id string) (*support.Ticket, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	ticket, ok := tr.tickets[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return ticket, nil
}

func (tr *FakeTicketRepo) List() ([]*support.Ticket, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	list := make([]*support.Ticket, 0, len(tr.tickets))
	for _, ticket := range tr.tickets {
		list = append(list, ticket)
	}
	sortByTime(list, func(t *support.Ticket) (int64, string) { return t.CreatedAt.UnixNano(), t.ID })
	return list, nil
}

var _ support.NoticeRepo = (*FakeNoticeRepo)(nil)

type FakeNoticeRepo struct {
	notices map[string]*support.Notice
	lock    sync.RWMutex
}

func NewFakeNoticeRepo() *FakeNoticeRepo {
	return &FakeNoticeRepo{notices: make(map[string]*support.Notice)}
}

func (nr *FakeNoticeRepo) Upsert(notice *support.Notice) error {
	nr.lock.Lock()
	defer nr.lock.Unlock()

	if notice.ID == "" {
		notice.ID = uuid.New().String()
	}
	nr.notices[notice.ID] = notice
	return nil
}

func (nr *FakeNoticeRepo) Delete(id string) error {
	nr.lock.Lock()
	defer nr.lock.Unlock()

	if _, ok := nr.notices[id]; !ok {
		return errs.ErrNotFound
	}
	delete(nr.notices, id)
	return nil
}

func (nr *FakeNoticeRepo) GetByID(id string) (*support.Notice, error) {
	nr.lock.RLock()
	defer nr.lock.RUnlock()

	notice, ok := nr.notices[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return notice, nil
}

func (nr *FakeNoticeRepo) List() ([]*support.Notice, error) {
	nr.lock.RLock()
	defer nr.lock.RUnlock()

	list := make([]*support.Notice, 0, len(nr.notices))
	for _, notice := range nr.notices {
		list = append(list, notice)
	}
	sortByTime(list, func(n *support.Notice) (int64, string) { return n.CreatedAt.UnixNano(), n.ID })
	return list, nil
}

var _ support.TermRepo = (*FakeTermRepo)(nil)

type FakeTermRepo struct {
	terms map[string]*support.Term
	lock  sync.RWMutex
}

func NewFakeTermRepo() *FakeTermRepo {
	return &FakeTermRepo{terms: make(map[string]*support.Term)}
}

func (tr *FakeTermRepo) Upsert(term *support.Term) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if term.ID == "" {
		term.ID = uuid.New().String()
	}
	tr.terms[term.ID] = term
	return nil
}

func (tr *FakeTermRepo) Delete(id string) error {
	tr.lock.Lock()
	defer tr.lock.Unlock()

	if _, ok := tr.terms[id]; !ok {
		return errs.ErrNotFound
	}
	delete(tr.terms, id)
	return nil
}

func (tr *FakeTermRepo) GetByID(id string) (*support.Term, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	term, ok := tr.terms[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return term, nil
}

func (tr *FakeTermRepo) List() ([]*support.Term, error) {
	tr.lock.RLock()
	defer tr.lock.RUnlock()

	list := make([]*support.Term, 0, len(tr.terms))
	for _, term := range tr.terms {
		list = append(list, term)
	}
	sortByTime(list, func(t *support.Term) (int64, string) { return t.EffectiveAt.UnixNano(), t.ID })
	return list, nil
}

var _ support.FAQRepo = (*FakeFAQRepo)(nil)

type FakeFAQRepo struct {
	faqs map[string]*support.FAQ
	lock sync.RWMutex
}

func NewFakeFAQRepo() *FakeFAQRepo {
	return &FakeFAQRepo{faqs: make(map[string]*support.FAQ)}
}

func (fr *FakeFAQRepo) Upsert(faq *support.FAQ) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if faq.ID == "" {
		faq.ID = uuid.New().String()
	}
	fr.faqs[faq.ID] = faq
	return nil
}

func (fr *FakeFAQRepo) Delete(id string) error {
	fr.lock.Lock()
	defer fr.lock.Unlock()

	if _, ok := fr.faqs[id]; !ok {
		return errs.ErrNotFound
	}
	delete(fr.faqs, id)
	return nil
}

func (fr *FakeFAQRepo) GetByID(id string) (*support.FAQ, error) {
	fr.lock.RLock()
	defer fr.lock.RUnlock()

	faq, ok := fr.faqs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return faq, nil
}

func (fr *FakeFAQRepo) List() ([]*support.FAQ, error) {
	fr.lock.RLock()
	defer fr.lock.RUnlock()

	list := make([]*support.FAQ, 0, len(fr.faqs))
	for _, faq := range fr.faqs {
		list = append(list, faq)
	}
	sortByTime(list, func(f *support.FAQ) (int64, string) { return f.CreatedAt.UnixNano(), f.ID })
	return list, nil
}

// sortByTime orders entries oldest-first, falling back to ID for stability.
func sortByTime[T any](list []T, key func(T) (int64, string)) {
	sort.Slice(list, func(i, j int) bool {
		ti, idi := key(list[i])
		tj, idj := key(list[j])
		if ti == tj {
			return idi < idj
		}
		return ti < tj
	})
}
