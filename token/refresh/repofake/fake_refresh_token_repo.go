package fakerefreshrepo

import (
	"sync"

	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/token/refresh"
)

var _ refresh.Repo = (*FakeRefreshTokenRepo)(nil)

type FakeRefreshTokenRepo struct {
	tokens   map[string]*refresh.StoredRefreshToken
	adminIds map[string]string // admin id to token
	lock     sync.RWMutex
}

func NewFakeRefreshTokenRepo() *FakeRefreshTokenRepo {
	return &FakeRefreshTokenRepo{
		tokens:   make(map[string]*refresh.StoredRefreshToken),
		adminIds: make(map[string]string),
	}
}

func (rr *FakeRefreshTokenRepo) Upsert(token *refresh.StoredRefreshToken) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	rr.tokens[token.Token] = token
	rr.adminIds[token.AdminID] = token.Token
	return nil
}

func (rr *FakeRefreshTokenRepo) Delete(token string) error {
	rr.lock.Lock()
	defer rr.lock.Unlock()

	stored, ok := rr.tokens[token]
	if !ok {
		return errs.ErrNotFound
	}
	delete(rr.adminIds, stored.AdminID)
	delete(rr.tokens, token)
	return nil
}

func (rr *FakeRefreshTokenRepo) Get(token string) (*refresh.StoredRefreshToken, error) {
	rr.lock.RLock()
	defer rr.lock.RUnlock()

	stored, ok := rr.tokens[token]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return stored, nil
}

func (rr *FakeRefreshTokenRepo) GetByAdminID(adminID string) (*refresh.StoredRefreshToken, error) {
	rr.lock.RLock()
	defer rr.lock.RUnlock()

	token, ok := rr.adminIds[adminID]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return rr.tokens[token], nil
}
