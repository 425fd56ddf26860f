package artists

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

const artistColumns = `id, name, city, state, phone, genres,
	image_link, facebook_link, website_link, seeking_venue, seeking_description`

func scanArtist(row interface{ Scan(...any) error }, a *Artist) error {
	return row.Scan(
		&a.ID,
		&a.Name,
		&a.City,
		&a.State,
		&a.Phone,
		&a.Genres,
		&a.ImageLink,
		&a.FacebookLink,
		&a.WebsiteLink,
		&a.SeekingVenue,
		&a.SeekingDescription,
	)
}

func (r *Repository) Create(ctx context.Context, artist *Artist) error {
	const query = `
		INSERT INTO artists (
			name, city, state, phone, genres,
			image_link, facebook_link, website_link,
			seeking_venue, seeking_description
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	err := r.db.QueryRow(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
	).Scan(&artist.ID)
	if err != nil {
		return fmt.Errorf("insert artist: %w", dbx.Classify(err))
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, artistID int64) (*Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`

	var a Artist
	if err := scanArtist(r.db.QueryRow(ctx, query, artistID), &a); err != nil {
		return nil, fmt.Errorf("get artist %d: %w", artistID, dbx.Classify(err))
	}
	return &a, nil
}

func (r *Repository) GetByIDs(ctx context.Context, artistIDs []int64) (map[int64]Artist, error) {
	out := make(map[int64]Artist, len(artistIDs))
	if len(artistIDs) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx, `SELECT `+artistColumns+` FROM artists WHERE id = ANY($1)`, artistIDs)
	if err != nil {
		return nil, fmt.Errorf("get artists: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var a Artist
		if err := scanArtist(rows, &a); err != nil {
			return nil, err
		}
		out[a.ID] = a
	}
	return out, rows.Err()
}

func (r *Repository) Update(ctx context.Context, artist *Artist) error {
	const query = `
		UPDATE artists SET
			name = $1, city = $2, state = $3, phone = $4, genres = $5,
			image_link = $6, facebook_link = $7, website_link = $8,
			seeking_venue = $9, seeking_description = $10
		WHERE id = $11
	`
	genres := artist.Genres
	if genres == nil {
		genres = []string{}
	}

	tag, err := r.db.Exec(ctx, query,
		artist.Name,
		artist.City,
		artist.State,
		artist.Phone,
		genres,
		artist.ImageLink,
		artist.FacebookLink,
		artist.WebsiteLink,
		artist.SeekingVenue,
		artist.SeekingDescription,
		artist.ID,
	)
	if err != nil {
		return fmt.Errorf("update artist %d: %w", artist.ID, dbx.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update artist %d: %w", artist.ID, dbx.ErrNotFound)
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, artistID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, artistID)
	if err != nil {
		return fmt.Errorf("delete artist %d: %w", artistID, dbx.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete artist %d: %w", artistID, dbx.ErrNotFound)
	}
	return nil
}

// List returns every artist's id and name in insertion order.
func (r *Repository) List(ctx context.Context) ([]ArtistSummary, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM artists ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	defer rows.Close()

	list := []ArtistSummary{}
	for rows.Next() {
		var s ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func (r *Repository) Search(ctx context.Context, term string, now time.Time) ([]ArtistSummary, error) {
	const query = `
		SELECT a.id, a.name,
		       COUNT(s.id) FILTER (WHERE s.start_time > $2) AS num_upcoming_shows
		FROM artists a
		LEFT JOIN shows s ON s.artist_id = a.id
		WHERE a.name ILIKE $1
		GROUP BY a.id
		ORDER BY a.id
	`
	rows, err := r.db.Query(ctx, query, dbx.ContainsPattern(term), now)
	if err != nil {
		return nil, fmt.Errorf("search artists: %w", err)
	}
	defer rows.Close()

	results := []ArtistSummary{}
	for rows.Next() {
		var s ArtistSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}
