package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"fyyur/internal/clock"
	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/storage"
	"fyyur/internal/domain/venues"
	"fyyur/internal/flash"
	"fyyur/internal/infra/dbx"
	"fyyur/internal/ratelimiter"
	"fyyur/internal/web"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// memStore backs the fake venue, artist and show stores with plain maps. It
// mimics the foreign keys of the real schema: shows need both ends to exist
// and go away with either of them.
type memStore struct {
	mu      sync.Mutex
	nextID  int64
	venues  map[int64]venues.Venue
	artists map[int64]artists.Artist
	shows   map[int64]shows.Show

	// writeErr, when set, is returned by every write.
	writeErr error
}

func newMemStore() *memStore {
	return &memStore{
		venues:  make(map[int64]venues.Venue),
		artists: make(map[int64]artists.Artist),
		shows:   make(map[int64]shows.Show),
	}
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) upcomingFor(match func(shows.Show) bool, now time.Time) int {
	n := 0
	for _, s := range m.shows {
		if match(s) && s.StartTime.After(now) {
			n++
		}
	}
	return n
}

func (m *memStore) addVenue(v venues.Venue) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	v.ID = m.id()
	m.venues[v.ID] = v
	return v.ID
}

func (m *memStore) addArtist(a artists.Artist) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	a.ID = m.id()
	m.artists[a.ID] = a
	return a.ID
}

func (m *memStore) addShow(venueID, artistID int64, start time.Time) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := shows.Show{ID: m.id(), VenueID: venueID, ArtistID: artistID, StartTime: start}
	m.shows[s.ID] = s
	return s.ID
}

type memVenues struct{ *memStore }

func (m memVenues) Create(_ context.Context, venue *venues.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	venue.ID = m.id()
	m.venues[venue.ID] = *venue
	return nil
}

func (m memVenues) GetByID(_ context.Context, venueID int64) (*venues.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.venues[venueID]
	if !ok {
		return nil, fmt.Errorf("get venue %d: %w", venueID, dbx.ErrNotFound)
	}
	return &v, nil
}

func (m memVenues) GetByIDs(_ context.Context, venueIDs []int64) (map[int64]venues.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int64]venues.Venue, len(venueIDs))
	for _, id := range venueIDs {
		if v, ok := m.venues[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (m memVenues) Update(_ context.Context, venue *venues.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.venues[venue.ID]; !ok {
		return fmt.Errorf("update venue %d: %w", venue.ID, dbx.ErrNotFound)
	}
	m.venues[venue.ID] = *venue
	return nil
}

func (m memVenues) Delete(_ context.Context, venueID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.venues[venueID]; !ok {
		return fmt.Errorf("delete venue %d: %w", venueID, dbx.ErrNotFound)
	}
	delete(m.venues, venueID)
	maps.DeleteFunc(m.shows, func(_ int64, s shows.Show) bool { return s.VenueID == venueID })
	return nil
}

func (m memVenues) ListAreas(_ context.Context, now time.Time) ([]venues.Area, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := slices.SortedFunc(maps.Values(m.venues), func(a, b venues.Venue) int {
		return cmp.Or(cmp.Compare(a.State, b.State), cmp.Compare(a.City, b.City), cmp.Compare(a.ID, b.ID))
	})

	var areas []venues.Area
	for _, v := range list {
		if n := len(areas); n == 0 || areas[n-1].City != v.City || areas[n-1].State != v.State {
			areas = append(areas, venues.Area{City: v.City, State: v.State})
		}
		area := &areas[len(areas)-1]
		area.Venues = append(area.Venues, venues.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: m.upcomingFor(func(s shows.Show) bool { return s.VenueID == v.ID }, now),
		})
	}
	return areas, nil
}

func (m memVenues) Search(_ context.Context, term string, now time.Time) ([]venues.VenueSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []venues.VenueSummary{}
	for _, id := range slices.Sorted(maps.Keys(m.venues)) {
		v := m.venues[id]
		if !strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			continue
		}
		out = append(out, venues.VenueSummary{
			ID:               v.ID,
			Name:             v.Name,
			NumUpcomingShows: m.upcomingFor(func(s shows.Show) bool { return s.VenueID == v.ID }, now),
		})
	}
	return out, nil
}

type memArtists struct{ *memStore }

func (m memArtists) Create(_ context.Context, artist *artists.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	artist.ID = m.id()
	m.artists[artist.ID] = *artist
	return nil
}

func (m memArtists) GetByID(_ context.Context, artistID int64) (*artists.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artists[artistID]
	if !ok {
		return nil, fmt.Errorf("get artist %d: %w", artistID, dbx.ErrNotFound)
	}
	return &a, nil
}

func (m memArtists) GetByIDs(_ context.Context, artistIDs []int64) (map[int64]artists.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[int64]artists.Artist, len(artistIDs))
	for _, id := range artistIDs {
		if a, ok := m.artists[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (m memArtists) Update(_ context.Context, artist *artists.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.artists[artist.ID]; !ok {
		return fmt.Errorf("update artist %d: %w", artist.ID, dbx.ErrNotFound)
	}
	m.artists[artist.ID] = *artist
	return nil
}

func (m memArtists) Delete(_ context.Context, artistID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	if _, ok := m.artists[artistID]; !ok {
		return fmt.Errorf("delete artist %d: %w", artistID, dbx.ErrNotFound)
	}
	delete(m.artists, artistID)
	maps.DeleteFunc(m.shows, func(_ int64, s shows.Show) bool { return s.ArtistID == artistID })
	return nil
}

func (m memArtists) List(_ context.Context) ([]artists.ArtistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []artists.ArtistSummary{}
	for _, id := range slices.Sorted(maps.Keys(m.artists)) {
		out = append(out, artists.ArtistSummary{ID: id, Name: m.artists[id].Name})
	}
	return out, nil
}

func (m memArtists) Search(_ context.Context, term string, now time.Time) ([]artists.ArtistSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []artists.ArtistSummary{}
	for _, id := range slices.Sorted(maps.Keys(m.artists)) {
		a := m.artists[id]
		if !strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			continue
		}
		out = append(out, artists.ArtistSummary{
			ID:               a.ID,
			Name:             a.Name,
			NumUpcomingShows: m.upcomingFor(func(s shows.Show) bool { return s.ArtistID == a.ID }, now),
		})
	}
	return out, nil
}

type memShows struct{ *memStore }

func (m memShows) Create(_ context.Context, show *shows.Show) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	_, venueOK := m.venues[show.VenueID]
	_, artistOK := m.artists[show.ArtistID]
	if !venueOK || !artistOK {
		return fmt.Errorf("create show: %w", dbx.ErrInvalidReference)
	}
	show.ID = m.id()
	m.shows[show.ID] = *show
	return nil
}

func (m memShows) Delete(_ context.Context, showID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shows[showID]; !ok {
		return fmt.Errorf("delete show %d: %w", showID, dbx.ErrNotFound)
	}
	delete(m.shows, showID)
	return nil
}

func (m memShows) List(_ context.Context) ([]shows.ShowDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []shows.ShowDetail{}
	for _, id := range slices.Sorted(maps.Keys(m.shows)) {
		s := m.shows[id]
		out = append(out, shows.ShowDetail{
			Show:            s,
			VenueName:       m.venues[s.VenueID].Name,
			ArtistName:      m.artists[s.ArtistID].Name,
			ArtistImageLink: m.artists[s.ArtistID].ImageLink,
		})
	}
	return out, nil
}

func (m memShows) ListByVenue(_ context.Context, venueID int64) ([]shows.Show, error) {
	return m.listWhere(func(s shows.Show) bool { return s.VenueID == venueID }), nil
}

func (m memShows) ListByArtist(_ context.Context, artistID int64) ([]shows.Show, error) {
	return m.listWhere(func(s shows.Show) bool { return s.ArtistID == artistID }), nil
}

func (m memShows) listWhere(match func(shows.Show) bool) []shows.Show {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []shows.Show{}
	for _, id := range slices.Sorted(maps.Keys(m.shows)) {
		if s := m.shows[id]; match(s) {
			out = append(out, s)
		}
	}
	return out
}

var errStoreDown = errors.New("connection refused")

func newTestApplication(t *testing.T) (*application, *memStore) {
	t.Helper()

	templates, err := web.NewRenderer()
	require.NoError(t, err)

	mem := newMemStore()
	app := &application{
		config: config{
			env:  "test",
			auth: basicConfig{user: "admin", pass: "secret"},
			rateLimiter: ratelimiter.Config{
				RequestsPerTimeFrame: 2,
				TimeFrame:            time.Minute,
				Enabled:              false,
			},
		},
		store:       storage.NewStaticContainer(memVenues{mem}, memArtists{mem}, memShows{mem}),
		logger:      zap.NewNop().Sugar(),
		templates:   templates,
		flash:       flash.NewSigner("test-secret", "fyyur"),
		clock:       clock.NewFixed(testNow),
		rateLimiter: ratelimiter.NewFixedWindowLimiter(2, time.Minute),
	}
	return app, mem
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

// followRedirect replays the flash cookie set by rr against its Location.
func followRedirect(t *testing.T, rr *httptest.ResponseRecorder, mux http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rr.Code)

	req := httptest.NewRequest(http.MethodGet, rr.Header().Get("Location"), nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return executeRequest(req, mux)
}
