package shows

import (
	"context"
	"fmt"

	"fyyur/internal/infra/dbx"

	"github.com/jackc/pgx/v5"
)

type Repository struct {
	db dbx.Querier
}

func NewRepository(db dbx.Querier) *Repository {
	return &Repository{db: db}
}

// Create inserts the show. A venue or artist that does not exist surfaces as
// dbx.ErrInvalidReference.
func (r *Repository) Create(ctx context.Context, show *Show) error {
	const query = `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := r.db.QueryRow(ctx, query, show.VenueID, show.ArtistID, show.StartTime).Scan(&show.ID); err != nil {
		return fmt.Errorf("insert show: %w", dbx.Classify(err))
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, showID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shows WHERE id = $1`, showID)
	if err != nil {
		return fmt.Errorf("delete show %d: %w", showID, dbx.Classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete show %d: %w", showID, dbx.ErrNotFound)
	}
	return nil
}

// List returns every show with its venue and artist names, in insertion order.
func (r *Repository) List(ctx context.Context) ([]ShowDetail, error) {
	const query = `
		SELECT s.id, s.venue_id, s.artist_id, s.start_time,
		       v.name, a.name, a.image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.id
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}
	defer rows.Close()

	list := []ShowDetail{}
	for rows.Next() {
		var d ShowDetail
		if err := rows.Scan(
			&d.ID,
			&d.VenueID,
			&d.ArtistID,
			&d.StartTime,
			&d.VenueName,
			&d.ArtistName,
			&d.ArtistImageLink,
		); err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r *Repository) ListByVenue(ctx context.Context, venueID int64) ([]Show, error) {
	return r.listWhere(ctx, `venue_id = $1`, venueID)
}

func (r *Repository) ListByArtist(ctx context.Context, artistID int64) ([]Show, error) {
	return r.listWhere(ctx, `artist_id = $1`, artistID)
}

func (r *Repository) listWhere(ctx context.Context, cond string, id int64) ([]Show, error) {
	query := `SELECT id, venue_id, artist_id, start_time FROM shows WHERE ` + cond + ` ORDER BY id`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("list shows: %w", err)
	}

	list, err := pgx.CollectRows(rows, pgx.RowToStructByPos[Show])
	if err != nil {
		return nil, fmt.Errorf("scan shows: %w", err)
	}
	return list, nil
}
