package artists

import (
	"context"
	"time"
)

type Artist struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingVenue       bool     `json:"seeking_venue"`
	SeekingDescription string   `json:"seeking_description"`
}

type ArtistSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

type Store interface {
	Create(ctx context.Context, artist *Artist) error
	GetByID(ctx context.Context, artistID int64) (*Artist, error)
	GetByIDs(ctx context.Context, artistIDs []int64) (map[int64]Artist, error)
	Update(ctx context.Context, artist *Artist) error
	Delete(ctx context.Context, artistID int64) error
	List(ctx context.Context) ([]ArtistSummary, error)
	Search(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error)
}
