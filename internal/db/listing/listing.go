package listing

import (
	"context"
	"database/sql"
	c "roomie/internal/core/domain/common"
	e "roomie/internal/core/domain/errors"
	"roomie/internal/core/domain/listing"
	"roomie/internal/core/domain/user"

	"github.com/jackc/pgx/v4/pgxpool"
)

type PgxListingRepository struct {
	db *pgxpool.Pool
}

func NewPgxRepository(db *pgxpool.Pool) *PgxListingRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxListingRepository{db: db}
}

func (r *PgxListingRepository) ListByOwner(
	ctx context.Context,
	ownerID user.ID,
) ([]listing.Listing, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, owner_id, title, picture_cover, city, state, country, zip,
		        rent, utilities_included, created_at
		 FROM listing WHERE owner_id = $1 ORDER BY id`,
		int64(ownerID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listings := make([]listing.Listing, 0)
	for rows.Next() {
		var (
			l            listing.Listing
			id           int64
			owner        int64
			pictureCover sql.NullString
			state        sql.NullString
			zip          sql.NullString
		)
		err := rows.Scan(
			&id,
			&owner,
			&l.Title,
			&pictureCover,
			&l.City,
			&state,
			&l.Country,
			&zip,
			&l.Rent,
			&l.UtilitiesIncluded,
			&l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		l.ID = listing.ID(id)
		l.OwnerID = user.ID(owner)
		l.PictureCover = c.NewOptional(pictureCover.String, pictureCover.Valid)
		l.State = c.NewOptional(state.String, state.Valid)
		l.Zip = c.NewOptional(zip.String, zip.Valid)
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
