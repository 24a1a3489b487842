package listing

import (
	"context"
	"fmt"
	"roomie/internal/core/domain/user"
	"sync"
)

type FakeRepository struct {
	Listings    []Listing
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) ListByOwner(ctx context.Context, ownerID user.ID) ([]Listing, error) {
	if r.ReturnError {
		return nil, fmt.Errorf("could not list listings for owner %d", ownerID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	listings := make([]Listing, 0)
	for _, l := range r.Listings {
		if l.OwnerID == ownerID {
			listings = append(listings, l)
		}
	}
	return listings, nil
}
