package fakeadminrepo

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/me1pik/admin-backoffice/admins"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

var _ admins.Repo = (*FakeAdminRepo)(nil)

type FakeAdminRepo struct {
	admins   map[string]*admins.Admin
	emailIds map[string]string // email to admin id
	lock     sync.RWMutex
}

func NewFakeAdminRepo() *FakeAdminRepo {
	return &FakeAdminRepo{
		admins:   make(map[string]*admins.Admin),
		emailIds: make(map[string]string),
	}
}

func (ar *FakeAdminRepo) Upsert(admin *admins.Admin) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	if admin.ID == "" {
		admin.ID = uuid.New().String()
	}
	ar.admins[admin.ID] = admin
	ar.emailIds[admin.Email] = admin.ID
	return nil
}

func (ar *FakeAdminRepo) Delete(id string) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	admin, ok := ar.admins[id]
	if !ok {
		return errs.ErrNotFound
	}
	delete(ar.emailIds, admin.Email)
	delete(ar.admins, id)
	return nil
}

func (ar *FakeAdminRepo) GetByEmail(email string) (*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	id, ok := ar.emailIds[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return ar.admins[id], nil
}

func (ar *FakeAdminRepo) GetByID(id string) (*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	admin, ok := ar.admins[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return admin, nil
}

func (ar *FakeAdminRepo) List() ([]*admins.Admin, error) {
	ar.lock.RLock()
	defer ar.lock.RUnlock()

	list := make([]*admins.Admin, 0, len(ar.admins))
	for _, admin := range ar.admins {
		list = append(list, admin)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].DateJoined.Equal(list[j].DateJoined) {
			return list[i].ID < list[j].ID
		}
		return list[i].DateJoined.Before(list[j].DateJoined)
	})
	return list, nil
}

func (ar *FakeAdminRepo) SetStatus(id string, status admins.StatusType) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	admin, ok := ar.admins[id]
	if !ok {
		return errs.ErrNotFound
	}
	admin.Status = status
	return nil
}

func (ar *FakeAdminRepo) SetLastLogin(id string) error {
	ar.lock.Lock()
	defer ar.lock.Unlock()

	admin, ok := ar.admins[id]
	if !ok {
		return errs.ErrNotFound
	}
	admin.LastLogin = time.Now()
	return nil
}
