package shows

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 20, 0, 0, 0, time.UTC)

func artistLookup(known map[int64]Counterpart) Lookup {
	return func(id int64) (Counterpart, bool) {
		c, ok := known[id]
		return c, ok
	}
}

func TestAggregate(t *testing.T) {
	artistsByID := map[int64]Counterpart{
		10: {ID: 10, Name: "Guns N Petals", ImageLink: "https://img/gnp.jpg"},
		11: {ID: 11, Name: "Matt Quevedo", ImageLink: "https://img/mq.jpg"},
	}

	t.Run("yesterday is past", func(t *testing.T) {
		list := []Show{{ID: 1, VenueID: 1, ArtistID: 10, StartTime: now.Add(-24 * time.Hour)}}

		past, upcoming, err := Aggregate(1, VenueSide, list, artistLookup(artistsByID), now)
		require.NoError(t, err)

		require.Len(t, past, 1)
		assert.Empty(t, upcoming)
		assert.Equal(t, int64(10), past[0].CounterpartID)
		assert.Equal(t, "Guns N Petals", past[0].CounterpartName)
		assert.Equal(t, "https://img/gnp.jpg", past[0].CounterpartImageLink)
	})

	t.Run("boundary is past", func(t *testing.T) {
		list := []Show{
			{ID: 1, VenueID: 1, ArtistID: 10, StartTime: now},
			{ID: 2, VenueID: 1, ArtistID: 11, StartTime: now.Add(time.Nanosecond)},
		}

		past, upcoming, err := Aggregate(1, VenueSide, list, artistLookup(artistsByID), now)
		require.NoError(t, err)

		require.Len(t, past, 1)
		require.Len(t, upcoming, 1)
		assert.Equal(t, int64(10), past[0].CounterpartID)
		assert.Equal(t, int64(11), upcoming[0].CounterpartID)
	})

	t.Run("keeps input order and ignores other venues", func(t *testing.T) {
		list := []Show{
			{ID: 1, VenueID: 1, ArtistID: 11, StartTime: now.Add(72 * time.Hour)},
			{ID: 2, VenueID: 2, ArtistID: 10, StartTime: now.Add(24 * time.Hour)},
			{ID: 3, VenueID: 1, ArtistID: 10, StartTime: now.Add(48 * time.Hour)},
		}

		past, upcoming, err := Aggregate(1, VenueSide, list, artistLookup(artistsByID), now)
		require.NoError(t, err)

		assert.Empty(t, past)
		require.Len(t, upcoming, 2)
		assert.Equal(t, int64(11), upcoming[0].CounterpartID)
		assert.Equal(t, int64(10), upcoming[1].CounterpartID)
	})

	t.Run("artist side looks up venues", func(t *testing.T) {
		venuesByID := map[int64]Counterpart{
			1: {ID: 1, Name: "The Musical Hop"},
		}
		list := []Show{{ID: 1, VenueID: 1, ArtistID: 10, StartTime: now.Add(time.Hour)}}

		past, upcoming, err := Aggregate(10, ArtistSide, list, artistLookup(venuesByID), now)
		require.NoError(t, err)

		assert.Empty(t, past)
		require.Len(t, upcoming, 1)
		assert.Equal(t, "The Musical Hop", upcoming[0].CounterpartName)
	})

	t.Run("missing counterpart is not found", func(t *testing.T) {
		list := []Show{{ID: 7, VenueID: 1, ArtistID: 99, StartTime: now}}

		past, upcoming, err := Aggregate(1, VenueSide, list, artistLookup(artistsByID), now)
		assert.ErrorIs(t, err, ErrCounterpartNotFound)
		assert.Nil(t, past)
		assert.Nil(t, upcoming)
	})

	t.Run("no shows gives empty slices", func(t *testing.T) {
		past, upcoming, err := Aggregate(1, VenueSide, nil, artistLookup(artistsByID), now)
		require.NoError(t, err)
		assert.NotNil(t, past)
		assert.NotNil(t, upcoming)
		assert.Empty(t, past)
		assert.Empty(t, upcoming)
	})
}

func TestListingStartTimeString(t *testing.T) {
	l := Listing{StartTime: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)}
	assert.Equal(t, "2019-05-21 21:30:00", l.StartTimeString())
}

func TestListingJSON(t *testing.T) {
	l := Listing{
		CounterpartID:        4,
		CounterpartName:      "Guns N Petals",
		CounterpartImageLink: "https://img/gnp.jpg",
		StartTime:            time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC),
	}

	b, err := json.Marshal([]Listing{l})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":4,"name":"Guns N Petals","image_link":"https://img/gnp.jpg","start_time":"2019-05-21 21:30:00"}]`, string(b))
}

func TestCounterpartIDs(t *testing.T) {
	list := []Show{
		{VenueID: 1, ArtistID: 5},
		{VenueID: 2, ArtistID: 4},
		{VenueID: 1, ArtistID: 5},
	}
	assert.Equal(t, []int64{5, 4}, CounterpartIDs(list, VenueSide))
	assert.Equal(t, []int64{1, 2}, CounterpartIDs(list, ArtistSide))
}
