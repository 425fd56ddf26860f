package venues

import (
	"context"
	"time"
)

// Venue represents a venue in the database
type Venue struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          string   `json:"image_link"`
	FacebookLink       string   `json:"facebook_link"`
	WebsiteLink        string   `json:"website_link"`
	SeekingTalent      bool     `json:"seeking_talent"`
	SeekingDescription string   `json:"seeking_description"`
}

// VenueSummary is the trimmed row used by listings and search results.
type VenueSummary struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area groups the venues sharing a city and state.
type Area struct {
	City   string         `json:"city"`
	State  string         `json:"state"`
	Venues []VenueSummary `json:"venues"`
}

type Store interface {
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, venueID int64) (*Venue, error)
	GetByIDs(ctx context.Context, venueIDs []int64) (map[int64]Venue, error)
	Update(ctx context.Context, venue *Venue) error
	Delete(ctx context.Context, venueID int64) error

	// ListAreas counts shows starting after now as upcoming.
	ListAreas(ctx context.Context, now time.Time) ([]Area, error)
	Search(ctx context.Context, term string, now time.Time) ([]VenueSummary, error)
}
