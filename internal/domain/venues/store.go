package venues

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/infra/dbx"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

const venueColumns = `id, name, city, state, address, phone, genres,
	image_link, facebook_link, website_link, seeking_talent, seeking_description`

func scanVenue(row interface{ Scan(...any) error }, v *Venue) error {
	return row.Scan(
		&v.ID,
		&v.Name,
		&v.City,
		&v.State,
		&v.Address,
		&v.Phone,
		&v.Genres,
		&v.ImageLink,
		&v.FacebookLink,
		&v.WebsiteLink,
		&v.SeekingTalent,
		&v.SeekingDescription,
	)
}

// Create inserts the venue and sets its generated ID.
func (r *Repository) Create(ctx context.Context, venue *Venue) error {
	const query = `
		INSERT INTO venues (
			name, city, state, address, phone, genres,
			image_link, facebook_link, website_link,
			seeking_talent, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		nonNil(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
	).Scan(&venue.ID)
	if err != nil {
		return fmt.Errorf("insert venue: %w", dbx.Classify(err))
	}
	return nil
}

// GetByID retrieves a venue by its ID.
func (r *Repository) GetByID(ctx context.Context, venueID int64) (*Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`

	var v Venue
	if err := scanVenue(r.db.QueryRow(ctx, query, venueID), &v); err != nil {
		return nil, fmt.Errorf("get venue %d: %w", venueID, dbx.Classify(err))
	}
	return &v, nil
}

// GetByIDs loads several venues at once, keyed by ID. Missing IDs are simply
// absent from the result.
func (r *Repository) GetByIDs(ctx context.Context, venueIDs []int64) (map[int64]Venue, error) {
	out := make(map[int64]Venue, len(venueIDs))
	if len(venueIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, venueIDs)
	if err != nil {
		return nil, fmt.Errorf("get venues: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var v Venue
		if err := scanVenue(rows, &v); err != nil {
			return nil, err
		}
		out[v.ID] = v
	}
	return out, rows.Err()
}

// Update replaces every editable field of the venue.
func (r *Repository) Update(ctx context.Context, venue *Venue) error {
	const query = `
		UPDATE venues SET
			name = $1, city = $2, state = $3, address = $4, phone = $5, genres = $6,
			image_link = $7, facebook_link = $8, website_link = $9,
			seeking_talent = $10, seeking_description = $11
		WHERE id = $12
	`
	tag, err := r.db.Exec(ctx, query,
		venue.Name,
		venue.City,
		venue.State,
		venue.Address,
		venue.Phone,
		nonNil(venue.Genres),
		venue.ImageLink,
		venue.FacebookLink,
		venue.WebsiteLink,
		venue.SeekingTalent,
		venue.SeekingDescription,
		venue.ID,
	)
	if err != nil {
		return fmt.Errorf("update venue %d: %w", venue.ID, dbx.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update venue %d: %w", venue.ID, dbx.ErrNotFound)
	}
	return nil
}

// Delete removes the venue; its shows go with it (ON DELETE CASCADE).
func (r *Repository) Delete(ctx context.Context, venueID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM venues WHERE id = $1`, venueID)
	if err != nil {
		return fmt.Errorf("delete venue %d: %w", venueID, dbx.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete venue %d: %w", venueID, dbx.ErrNotFound)
	}
	return nil
}

// ListAreas groups all venues by city and state, ordered by state then city.
func (r *Repository) ListAreas(ctx context.Context, now time.Time) ([]Area, error) {
	const query = `
		SELECT v.id, v.name, v.city, v.state,
		       COUNT(s.id) FILTER (WHERE s.start_time > $1) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		GROUP BY v.id
		ORDER BY v.state, v.city, v.id
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("list venue areas: %w", err)
	}
	defer rows.Close()

	var areas []Area
	for rows.Next() {
		var (
			summary     VenueSummary
			city, state string
		)
		if err := rows.Scan(&summary.ID, &summary.Name, &city, &state, &summary.NumUpcomingShows); err != nil {
			return nil, err
		}

		if n := len(areas); n > 0 && areas[n-1].City == city && areas[n-1].State == state {
			areas[n-1].Venues = append(areas[n-1].Venues, summary)
			continue
		}
		areas = append(areas, Area{City: city, State: state, Venues: []VenueSummary{summary}})
	}
	return areas, rows.Err()
}

// Search finds venues whose name contains term, case-insensitively.
func (r *Repository) Search(ctx context.Context, term string, now time.Time) ([]VenueSummary, error) {
	const query = `
		SELECT v.id, v.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM venues v
		LEFT JOIN shows s ON s.venue_id = v.id
		WHERE v.name ILIKE $1
		GROUP BY v.id
		ORDER BY v.id
	`
	rows, err := r.db.Query(ctx, query, dbx.ContainsPattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search venues: %w", err)
	}
	defer rows.Close()

	results := []VenueSummary{}
	for rows.Next() {
		var s VenueSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func nonNil(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
