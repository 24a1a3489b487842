package response

import (
	"roomie/internal/core/domain/listing"
)

type Listing struct {
	ID                int64   `json:"id"`
	Title             string  `json:"title"`
	PictureCover      *string `json:"pictureCover,omitempty"`
	City              string  `json:"city"`
	State             *string `json:"state,omitempty"`
	Country           string  `json:"country"`
	Zip               *string `json:"zip,omitempty"`
	Rent              int     `json:"rent"`
	UtilitiesIncluded bool    `json:"utilitiesIncl"`
}

func (l *Listing) FromDomainListing(dl listing.Listing) {
	l.ID = int64(dl.ID)
	l.Title = dl.Title
	if dl.PictureCover.IsPresent {
		pictureCover := dl.PictureCover.Value
		l.PictureCover = &pictureCover
	}
	l.City = dl.City
	if dl.State.IsPresent {
		state := dl.State.Value
		l.State = &state
	}
	l.Country = dl.Country
	if dl.Zip.IsPresent {
		zip := dl.Zip.Value
		l.Zip = &zip
	}
	l.Rent = dl.Rent
	l.UtilitiesIncluded = dl.UtilitiesIncluded
}
