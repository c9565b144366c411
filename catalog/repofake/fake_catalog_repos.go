package fakecatalogrepo

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/me1pik/admin-backoffice/catalog"
	errs "github.com/me1pik/admin-backoffice/internal/errors"
)

var _ catalog.ProductRepo = (*FakeProductRepo)(nil)

type FakeProductRepo struct {
	products map[string]*catalog.Product
	lock     sync.RWMutex
}

func NewFakeProductRepo() *FakeProductRepo {
	return &FakeProductRepo{products: make(map[string]*catalog.Product)}
}

func (pr *FakeProductRepo) Upsert(product *catalog.Product) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	pr.products[product.ID] = product
	return nil
}

func (pr *FakeProductRepo) Delete(id string) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	if _, ok := pr.products[id]; !ok {
		return errs.ErrNotFound
	}
	delete(pr.products, id)
	return nil
}

func (pr *FakeProductRepo) GetByID(id string) (*catalog.Product, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	product, ok := pr.products[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return product, nil
}

func (pr *FakeProductRepo) List() ([]*catalog.Product, error) {
	pr.lock.RLock()
	defer pr.lock.RUnlock()

	list := make([]*catalog.Product, 0, len(pr.products))
	for _, product := range pr.products {
		list = append(list, product)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].RegisteredAt.Equal(list[j].RegisteredAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].RegisteredAt.Before(list[j].RegisteredAt)
	})
	return list, nil
}

func (pr *FakeProductRepo) SetStatus(id string, status catalog.RegistrationStatus) error {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	product, ok := pr.products[id]
	if !ok {
		return errs.ErrNotFound
	}
	product.Status = status
	return nil
}

var _ catalog.BrandRepo = (*FakeBrandRepo)(nil)

type FakeBrandRepo struct {
	brands map[string]*catalog.Brand
	lock   sync.RWMutex
}

func NewFakeBrandRepo() *FakeBrandRepo {
	return &FakeBrandRepo{brands: make(map[string]*catalog.Brand)}
}

func (br *FakeBrandRepo) Upsert(brand *catalog.Brand) error {
	br.lock.Lock()
	defer br.lock.Unlock()

	if brand.ID == "" {
		brand.ID = uuid.New().String()
	}
	br.brands[brand.ID] = brand
	return nil
}

func (br *FakeBrandRepo) Delete(id string) error {
	br.lock.Lock()
	defer br.lock.Unlock()

	if _, ok := br.brands[id]; !ok {
		return errs.ErrNotFound
	}
	delete(br.brands, id)
	return nil
}

func (br *FakeBrandRepo) GetByID(id string) (*catalog.Brand, error) {
	br.lock.RLock()
	defer br.lock.RUnlock()

	brand, ok := br.brands[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	return brand, nil
}

func (br *FakeBrandRepo) List() ([]*catalog.Brand, error) {
	br.lock.RLock()
	defer br.lock.RUnlock()

	list := make([]*catalog.Brand, 0, len(br.brands))
	for _, brand := range br.brands {
		list = append(list, brand)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].RegisteredAt.Equal(list[j].RegisteredAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].RegisteredAt.Before(list[j].RegisteredAt)
	})
	return list, nil
}
