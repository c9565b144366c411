package fakememberrepo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
	"github.com/me1pik/admin-backoffice/members"
)

var _ members.Repo = (*FakeMemberRepo)(nil)

type FakeMemberRepo struct {
	members  map[string]*members.Member
	emailIds map[string]string
	lock     sync.RWMutex
}

func NewFakeMemberRepo() *FakeMemberRepo {
	return &FakeMemberRepo{
		members:  make(map[string]*members.Member),
		emailIds: make(map[string]string),
	}
}

func (mr *FakeMemberRepo) Upsert(member *members.Member) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	mr.members[member.ID] = member
	mr.emailIds[member.Email] = member.ID
	return nil
}

func (mr *FakeMemberRepo) Delete(id string) error {
	mr.lock.Lock()
	defer mr.lock.Unlock()

	member, ok := mr.members[id]
	if !ok {
		return errs.ErrNotFound
	}
	delete(mr.emailIds, member.Email)
	delete(mr.members, id)
	return nil
}

func (mr *FakeMemberRepo) GetByID(id string) (*members.Member, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	member, ok := mr.members[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return member, nil
}

func (mr *FakeMemberRepo) GetByEmail(email string) (*members.Member, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	id, ok := mr.emailIds[email]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return mr.members[id], nil
}

func (mr *FakeMemberRepo) List() ([]*members.Member, error) {
	mr.lock.RLock()
	defer mr.lock.RUnlock()

	list := make([]*members.Member, 0, len(mr.members))
	for _, member := range mr.members {
		list = append(list, member)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].SignedUpAt.Equal(list[j].SignedUpAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].SignedUpAt.Before(list[j].SignedUpAt)
	})
	return list, nil
}
