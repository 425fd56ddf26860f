package shows

import (
	"context"
	"time"
)

// Show books one artist at one venue at a start time.
type Show struct {
	ID        int64     `json:"id"`
	VenueID   int64     `json:"venue_id"`
	ArtistID  int64     `json:"artist_id"`
	StartTime time.Time `json:"start_time"`
}

// ShowDetail is a show joined with the names shown on the /shows page.
type ShowDetail struct {
	Show
	VenueName       string `json:"venue_name"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
}

type Store interface {
	Create(ctx context.Context, show *Show) error
	Delete(ctx context.Context, showID int64) error
	List(ctx context.Context) ([]ShowDetail, error)
	ListByVenue(ctx context.Context, venueID int64) ([]Show, error)
	ListByArtist(ctx context.Context, artistID int64) ([]Show, error)
}
