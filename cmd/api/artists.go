package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/storage"
	"fyyur/internal/flash"
	"fyyur/internal/infra/dbx"
)

type artistDetail struct {
	artists.Artist
	PastShows          []shows.Listing `json:"past_shows"`
	UpcomingShows      []shows.Listing `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

func (app *application) loadArtistDetail(ctx context.Context, artistID int64) (*artistDetail, error) {
	artist, err := app.store.Artists.GetByID(ctx, artistID)
	if err != nil {
		return nil, err
	}

	list, err := app.store.Shows.ListByArtist(ctx, artistID)
	if err != nil {
		return nil, err
	}

	found, err := app.store.Venues.GetByIDs(ctx, shows.CounterpartIDs(list, shows.ArtistSide))
	if err != nil {
		return nil, err
	}

	lookup := func(id int64) (shows.Counterpart, bool) {
		v, ok := found[id]
		if !ok {
			return shows.Counterpart{}, false
		}
		return shows.Counterpart{ID: v.ID, Name: v.Name, ImageLink: v.ImageLink}, true
	}

	past, upcoming, err := shows.Aggregate(artistID, shows.ArtistSide, list, lookup, app.clock.Now())
	if err != nil {
		return nil, err
	}

	return &artistDetail{
		Artist:             *artist,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (app *application) listArtistsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Artists.List(r.Context())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "pages/artists.html", &templateData{Artists: list})
}

func (app *application) searchArtistsHandler(w http.ResponseWriter, r *http.Request) {
	var form struct {
		SearchTerm string `schema:"search_term"`
	}
	if err := decodeForm(w, r, &form); err != nil {
		app.redirectWithFlash(w, r, "/artists", flash.Errorf("The search could not be read."))
		return
	}
	term := strings.TrimSpace(form.SearchTerm)

	found, err := app.store.Artists.Search(r.Context(), term, app.clock.Now())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	results := &searchResults{Kind: "artists", Term: term, Count: len(found), Data: make([]searchItem, 0, len(found))}
	for _, a := range found {
		results.Data = append(results.Data, searchItem{ID: a.ID, Name: a.Name, NumUpcomingShows: a.NumUpcomingShows})
	}

	app.render(w, r, http.StatusOK, "pages/search.html", &templateData{Search: results})
}

func (app *application) showArtistHandler(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r, "artistID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	detail, err := app.loadArtistDetail(r.Context(), artistID)
	if err != nil {
		app.readFailed(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "pages/show_artist.html", &templateData{Artist: detail})
}

func (app *application) createArtistFormHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "forms/new_artist.html", &templateData{ArtistForm: &artistForm{}})
}

func (app *application) createArtistHandler(w http.ResponseWriter, r *http.Request) {
	var form artistForm
	if err := decodeForm(w, r, &form); err != nil {
		app.logger.Warnw("bad artist form", "path", r.URL.Path, "error", err.Error())
		app.render(w, r, http.StatusBadRequest, "forms/new_artist.html", &templateData{
			Flashes:    []flash.Message{flash.Errorf("The form could not be read.")},
			ArtistForm: &form,
		})
		return
	}
	form.normalize()

	if errs := validateForm(&form); errs != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "forms/new_artist.html", &templateData{ArtistForm: &form, Errors: errs})
		return
	}

	artist := form.toArtist(0)
	err := app.attachUploadedImage(r, "artists", &artist.ImageLink)
	if err == nil {
		err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
			return tx.Artists.Create(r.Context(), artist)
		})
	}
	if err != nil {
		app.logWriteFailure(r, "artist", err)
		app.render(w, r, writeFailureStatus(err), "pages/home.html", &templateData{
			Flashes: []flash.Message{writeFailure("Artist", artist.Name, "listed", err)},
		})
		return
	}

	app.render(w, r, http.StatusOK, "pages/home.html", &templateData{
		Flashes: []flash.Message{flash.Successf("Artist %s was successfully listed!", artist.Name)},
	})
}

func (app *application) editArtistFormHandler(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r, "artistID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	artist, err := app.store.Artists.GetByID(r.Context(), artistID)
	if err != nil {
		app.readFailed(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "forms/edit_artist.html", &templateData{ArtistForm: artistFormFrom(artist), EditID: artistID})
}

func (app *application) editArtistHandler(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r, "artistID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}
	editURL := fmt.Sprintf("/artists/%d/edit", artistID)

	var form artistForm
	if err := decodeForm(w, r, &form); err != nil {
		app.logger.Warnw("bad artist form", "path", r.URL.Path, "error", err.Error())
		app.redirectWithFlash(w, r, editURL, flash.Errorf("The form could not be read."))
		return
	}
	form.normalize()

	if errs := validateForm(&form); errs != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "forms/edit_artist.html", &templateData{ArtistForm: &form, Errors: errs, EditID: artistID})
		return
	}

	artist := form.toArtist(artistID)
	err = app.attachUploadedImage(r, "artists", &artist.ImageLink)
	if err == nil {
		err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
			return tx.Artists.Update(r.Context(), artist)
		})
	}
	if err != nil {
		if errors.Is(err, dbx.ErrNotFound) {
			app.notFoundPage(w, r)
			return
		}
		app.logWriteFailure(r, "artist", err)
		app.redirectWithFlash(w, r, editURL, writeFailure("Artist", artist.Name, "edited", err))
		return
	}

	app.redirectWithFlash(w, r, fmt.Sprintf("/artists/%d", artistID), flash.Successf("Artist %s was successfully edited!", artist.Name))
}

func (app *application) deleteArtistHandler(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r, "artistID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	var name string
	err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
		artist, err := tx.Artists.GetByID(r.Context(), artistID)
		if err != nil {
			return err
		}
		name = artist.Name
		return tx.Artists.Delete(r.Context(), artistID)
	})
	if err != nil {
		app.logWriteFailure(r, "artist", err)
		app.redirectWithFlash(w, r, "/", writeFailure("Artist", name, "deleted", err))
		return
	}

	app.redirectWithFlash(w, r, "/", flash.Successf("Artist %s was successfully deleted.", name))
}
