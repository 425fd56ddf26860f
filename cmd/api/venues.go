package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/storage"
	"fyyur/internal/domain/venues"
	"fyyur/internal/flash"
	"fyyur/internal/infra/dbx"

	"github.com/go-chi/chi/v5"
)

// venueDetail is a venue with its shows split around the current time.
type venueDetail struct {
	venues.Venue
	PastShows          []shows.Listing `json:"past_shows"`
	UpcomingShows      []shows.Listing `json:"upcoming_shows"`
	PastShowsCount     int             `json:"past_shows_count"`
	UpcomingShowsCount int             `json:"upcoming_shows_count"`
}

// idParam reads a positive integer route parameter. Anything else is
// reported as not found since no record could match it.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid %s %q: %w", name, chi.URLParam(r, name), dbx.ErrNotFound)
	}
	return id, nil
}

func (app *application) loadVenueDetail(ctx context.Context, venueID int64) (*venueDetail, error) {
	venue, err := app.store.Venues.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}

	list, err := app.store.Shows.ListByVenue(ctx, venueID)
	if err != nil {
		return nil, err
	}

	found, err := app.store.Artists.GetByIDs(ctx, shows.CounterpartIDs(list, shows.VenueSide))
	if err != nil {
		return nil, err
	}

	lookup := func(id int64) (shows.Counterpart, bool) {
		a, ok := found[id]
		if !ok {
			return shows.Counterpart{}, false
		}
		return shows.Counterpart{ID: a.ID, Name: a.Name, ImageLink: a.ImageLink}, true
	}

	past, upcoming, err := shows.Aggregate(venueID, shows.VenueSide, list, lookup, app.clock.Now())
	if err != nil {
		return nil, err
	}

	return &venueDetail{
		Venue:              *venue,
		PastShows:          past,
		UpcomingShows:      upcoming,
		PastShowsCount:     len(past),
		UpcomingShowsCount: len(upcoming),
	}, nil
}

func (app *application) listVenuesHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := app.store.Venues.ListAreas(r.Context(), app.clock.Now())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "pages/venues.html", &templateData{Areas: areas})
}

// searchVenuesHandler matches search_term case-insensitively anywhere in the
// venue name. A blank term matches every venue.
func (app *application) searchVenuesHandler(w http.ResponseWriter, r *http.Request) {
	var form struct {
		SearchTerm string `schema:"search_term"`
	}
	if err := decodeForm(w, r, &form); err != nil {
		app.redirectWithFlash(w, r, "/venues", flash.Errorf("The search could not be read."))
		return
	}
	term := strings.TrimSpace(form.SearchTerm)

	found, err := app.store.Venues.Search(r.Context(), term, app.clock.Now())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	results := &searchResults{Kind: "venues", Term: term, Count: len(found), Data: make([]searchItem, 0, len(found))}
	for _, v := range found {
		results.Data = append(results.Data, searchItem{ID: v.ID, Name: v.Name, NumUpcomingShows: v.NumUpcomingShows})
	}

	app.render(w, r, http.StatusOK, "pages/search.html", &templateData{Search: results})
}

func (app *application) showVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := idParam(r, "venueID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	detail, err := app.loadVenueDetail(r.Context(), venueID)
	if err != nil {
		app.readFailed(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "pages/show_venue.html", &templateData{Venue: detail})
}

func (app *application) createVenueFormHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "forms/new_venue.html", &templateData{VenueForm: &venueForm{}})
}

func (app *application) createVenueHandler(w http.ResponseWriter, r *http.Request) {
	var form venueForm
	if err := decodeForm(w, r, &form); err != nil {
		app.logger.Warnw("bad venue form", "path", r.URL.Path, "error", err.Error())
		app.render(w, r, http.StatusBadRequest, "forms/new_venue.html", &templateData{
			Flashes:   []flash.Message{flash.Errorf("The form could not be read.")},
			VenueForm: &form,
		})
		return
	}
	form.normalize()

	if errs := validateForm(&form); errs != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "forms/new_venue.html", &templateData{VenueForm: &form, Errors: errs})
		return
	}

	venue := form.toVenue(0)
	err := app.attachUploadedImage(r, "venues", &venue.ImageLink)
	if err == nil {
		err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
			return tx.Venues.Create(r.Context(), venue)
		})
	}
	if err != nil {
		app.logWriteFailure(r, "venue", err)
		app.render(w, r, writeFailureStatus(err), "pages/home.html", &templateData{
			Flashes: []flash.Message{writeFailure("Venue", venue.Name, "listed", err)},
		})
		return
	}

	app.render(w, r, http.StatusOK, "pages/home.html", &templateData{
		Flashes: []flash.Message{flash.Successf("Venue %s was successfully listed!", venue.Name)},
	})
}

func (app *application) editVenueFormHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := idParam(r, "venueID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	venue, err := app.store.Venues.GetByID(r.Context(), venueID)
	if err != nil {
		app.readFailed(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "forms/edit_venue.html", &templateData{VenueForm: venueFormFrom(venue), EditID: venueID})
}

func (app *application) editVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := idParam(r, "venueID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}
	editURL := fmt.Sprintf("/venues/%d/edit", venueID)

	var form venueForm
	if err := decodeForm(w, r, &form); err != nil {
		app.logger.Warnw("bad venue form", "path", r.URL.Path, "error", err.Error())
		app.redirectWithFlash(w, r, editURL, flash.Errorf("The form could not be read."))
		return
	}
	form.normalize()

	if errs := validateForm(&form); errs != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "forms/edit_venue.html", &templateData{VenueForm: &form, Errors: errs, EditID: venueID})
		return
	}

	venue := form.toVenue(venueID)
	err = app.attachUploadedImage(r, "venues", &venue.ImageLink)
	if err == nil {
		err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
			return tx.Venues.Update(r.Context(), venue)
		})
	}
	if err != nil {
		if errors.Is(err, dbx.ErrNotFound) {
			app.notFoundPage(w, r)
			return
		}
		app.logWriteFailure(r, "venue", err)
		app.redirectWithFlash(w, r, editURL, writeFailure("Venue", venue.Name, "edited", err))
		return
	}

	app.redirectWithFlash(w, r, fmt.Sprintf("/venues/%d", venueID), flash.Successf("Venue %s was successfully edited!", venue.Name))
}

// deleteVenueHandler removes the venue and, through the foreign key, its
// shows. Both DELETE and the form POST land on the home page.
func (app *application) deleteVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := idParam(r, "venueID")
	if err != nil {
		app.notFoundPage(w, r)
		return
	}

	var name string
	err = app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
		venue, err := tx.Venues.GetByID(r.Context(), venueID)
		if err != nil {
			return err
		}
		name = venue.Name
		return tx.Venues.Delete(r.Context(), venueID)
	})
	if err != nil {
		app.logWriteFailure(r, "venue", err)
		app.redirectWithFlash(w, r, "/", writeFailure("Venue", name, "deleted", err))
		return
	}

	app.redirectWithFlash(w, r, "/", flash.Successf("Venue %s was successfully deleted.", name))
}
