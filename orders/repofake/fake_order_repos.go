package fakeorderrepo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/orders"
)

var _ orders.OrderRepo = (*FakeOrderRepo)(nil)

type FakeOrderRepo struct {
	orders map[string]*orders.Order
	lock   sync.RWMutex
}

func NewFakeOrderRepo() *FakeOrderRepo {
	return &FakeOrderRepo{orders: make(map[string]*orders.Order)}
}

func (or *FakeOrderRepo) Upsert(order *orders.Order) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	or.orders[order.ID] = order
	return nil
}

func (or *FakeOrderRepo) Delete(id string) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	if _, ok := or.orders[id]; !ok {
		return errs.ErrNotFound
	}
	delete(or.orders, id)
	return nil
}

func (or *FakeOrderRepo) GetByID(id string) (*orders.Order, error) {
	or.lock.RLock()
	defer or.lock.RUnlock()

	order, ok := or.orders[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return order, nil
}

func (or *FakeOrderRepo) List() ([]*orders.Order, error) {
	or.lock.RLock()
	defer or.lock.RUnlock()

	list := make([]*orders.Order, 0, len(or.orders))
	for _, order := range or.orders {
		list = append(list, order)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].OrderedAt.Equal(list[j].OrderedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].OrderedAt.Before(list[j].OrderedAt)
	})
	return list, nil
}

func (or *FakeOrderRepo) SetStatus(id string, status orders.OrderStatus) error {
	or.lock.Lock()
	defer or.lock.Unlock()

	order, ok := or.orders[id]
	if !ok {
		return errs.ErrNotFound
	}
	order.Status = status
	return nil
}

var _ orders.RentalRepo = (*FakeRentalRepo)(nil)

type FakeRentalRepo struct {
	rentals map[string]*orders.Rental
	lock    sync.RWMutex
}

func NewFakeRentalRepo() *FakeRentalRepo {
	return &FakeRentalRepo{rentals: make(map[string]*orders.Rental)}
}

func (rr *FakeRentalRepo) Upsert(rental *orders.Rental) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	if rental.ID == "" {
		rental.ID = uuid.New().String()
	}
	rr.rentals[rental.ID] = rental
	return nil
}

func (rr *FakeRentalRepo) Delete(id string) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	if _, ok := rr.rentals[id]; !ok {
		return errs.ErrNotFound
	}
	delete(rr.rentals, id)
	return nil
}

func (rr *FakeRentalRepo) GetByID(id string) (*orders.Rental, error) {
	rr.lock.RLock()
	defer rr.lock.RUnlock()

	rental, ok := rr.rentals[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return rental, nil
}

func (rr *FakeRentalRepo) List() ([]*orders.Rental, error) {
	rr.lock.RLock()
	defer rr.lock.RUnlock()

	list := make([]*orders.Rental, 0, len(rr.rentals))
	for _, rental := range rr.rentals {
		list = append(list, rental)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list, nil
}

func (rr *FakeRentalRepo) SetStatus(id string, status orders.RentalStatus) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	rental, ok := rr.rentals[id]
	if !ok {
		return errs.ErrNotFound
	}
	rental.Status = status
	return nil
}
