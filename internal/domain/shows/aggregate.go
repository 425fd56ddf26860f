package shows

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrCounterpartNotFound = errors.New("show counterpart not found")

// StartTimeLayout is how a listing's start time is rendered as text.
const StartTimeLayout = "2006-01-02 15:04:05"

// Side names which end of a show the reference entity sits on. For a venue
// page the counterpart of every show is its artist, and the other way round.
type Side int

const (
	VenueSide Side = iota
	ArtistSide
)

func (s Side) referenceID(show Show) int64 {
	if s == VenueSide {
		return show.VenueID
	}
	return show.ArtistID
}

func (s Side) counterpartID(show Show) int64 {
	if s == VenueSide {
		return show.ArtistID
	}
	return show.VenueID
}

// Counterpart is the part of the other entity that a listing displays.
type Counterpart struct {
	ID        int64
	Name      string
	ImageLink string
}

// Lookup resolves a counterpart by ID; ok is false when it does not exist.
type Lookup func(id int64) (c Counterpart, ok bool)

// Listing is one show as displayed on a venue or artist page.
type Listing struct {
	CounterpartID        int64     `json:"id"`
	CounterpartName      string    `json:"name"`
	CounterpartImageLink string    `json:"image_link"`
	StartTime            time.Time `json:"start_time"`
}

func (l Listing) StartTimeString() string {
	return l.StartTime.Format(StartTimeLayout)
}

// MarshalJSON writes start_time in StartTimeLayout.
func (l Listing) MarshalJSON() ([]byte, error) {
	type listing Listing
	return json.Marshal(struct {
		listing
		StartTime string `json:"start_time"`
	}{listing(l), l.StartTimeString()})
}

// Aggregate keeps the shows whose reference side equals refID and splits them
// into past (start_time <= now) and upcoming (start_time > now) listings,
// preserving input order. A counterpart missing from lookup fails the whole
// call with ErrCounterpartNotFound.
func Aggregate(refID int64, side Side, list []Show, lookup Lookup, now time.Time) (past, upcoming []Listing, err error) {
	past = []Listing{}
	upcoming = []Listing{}

	for _, show := range list {
		if side.referenceID(show) != refID {
			continue
		}

		id := side.counterpartID(show)
		c, ok := lookup(id)
		if !ok {
			return nil, nil, fmt.Errorf("show %d: %w: id %d", show.ID, ErrCounterpartNotFound, id)
		}

		listing := Listing{
			CounterpartID:        c.ID,
			CounterpartName:      c.Name,
			CounterpartImageLink: c.ImageLink,
			StartTime:            show.StartTime,
		}
		if show.StartTime.After(now) {
			upcoming = append(upcoming, listing)
		} else {
			past = append(past, listing)
		}
	}
	return past, upcoming, nil
}

// CounterpartIDs returns the distinct counterpart IDs of list in first-seen order.
func CounterpartIDs(list []Show, side Side) []int64 {
	seen := make(map[int64]struct{}, len(list))
	ids := make([]int64, 0, len(list))
	for _, show := range list {
		id := side.counterpartID(show)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
