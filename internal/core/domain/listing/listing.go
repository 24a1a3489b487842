package listing

import (
	"context"
	c "roomie/internal/core/domain/common"
	"roomie/internal/core/domain/user"
	"time"
)

type ID int64

// Listing is a read-only projection of a roommate listing, shown on its
// owner's profile.
type Listing struct {
	ID                ID
	OwnerID           user.ID
	Title             string
	PictureCover      c.Optional[string]
	City              string
	State             c.Optional[string]
	Country           string
	Zip               c.Optional[string]
	Rent              int
	UtilitiesIncluded bool
	CreatedAt         time.Time
}

type Repository interface {
	ListByOwner(ctx context.Context, ownerID user.ID) ([]Listing, error)
}
