package main

import (
	"net/http"

	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/venues"
)

type healthResponse struct {
	Status  string `json:"status"`
	Env     string `json:"env"`
	Version string `json:"version"`
}

// HealthCheck godoc
//
//	@Summary		Health check
//	@Description	Reports that the server is up along with its environment and version
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	healthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := healthResponse{
		Status:  "ok",
		Env:     app.config.env,
		Version: version,
	}

	if err := app.jsonResponse(w, http.StatusOK, data); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListVenues godoc
//
//	@Summary		List venues by area
//	@Description	Venues grouped by city and state, each with its number of upcoming shows
//	@Tags			venues
//	@Produce		json
//	@Success		200	{array}		venues.Area
//	@Failure		500	{object}	error
//	@Router			/venues [get]
func (app *application) apiListVenuesHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := app.store.Venues.ListAreas(r.Context(), app.clock.Now())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if areas == nil {
		areas = []venues.Area{}
	}

	if err := app.jsonResponse(w, http.StatusOK, areas); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetVenue godoc
//
//	@Summary		Fetch a venue
//	@Description	A venue with its past and upcoming shows
//	@Tags			venues
//	@Produce		json
//	@Param			id	path		int	true	"Venue ID"
//	@Success		200	{object}	venueDetail
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/venues/{id} [get]
func (app *application) apiGetVenueHandler(w http.ResponseWriter, r *http.Request) {
	venueID, err := idParam(r, "venueID")
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	detail, err := app.loadVenueDetail(r.Context(), venueID)
	if err != nil {
		if isNotFound(err) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListArtists godoc
//
//	@Summary		List artists
//	@Tags			artists
//	@Produce		json
//	@Success		200	{array}		artists.ArtistSummary
//	@Failure		500	{object}	error
//	@Router			/artists [get]
func (app *application) apiListArtistsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Artists.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []artists.ArtistSummary{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}

// GetArtist godoc
//
//	@Summary		Fetch an artist
//	@Description	An artist with past and upcoming shows
//	@Tags			artists
//	@Produce		json
//	@Param			id	path		int	true	"Artist ID"
//	@Success		200	{object}	artistDetail
//	@Failure		404	{object}	error
//	@Failure		500	{object}	error
//	@Router			/artists/{id} [get]
func (app *application) apiGetArtistHandler(w http.ResponseWriter, r *http.Request) {
	artistID, err := idParam(r, "artistID")
	if err != nil {
		app.notFoundResponse(w, r, err)
		return
	}

	detail, err := app.loadArtistDetail(r.Context(), artistID)
	if err != nil {
		if isNotFound(err) {
			app.notFoundResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, detail); err != nil {
		app.internalServerError(w, r, err)
	}
}

// ListShows godoc
//
//	@Summary		List shows
//	@Description	Every show with its venue name and artist name and image
//	@Tags			shows
//	@Produce		json
//	@Success		200	{array}		shows.ShowDetail
//	@Failure		500	{object}	error
//	@Router			/shows [get]
func (app *application) apiListShowsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Shows.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if list == nil {
		list = []shows.ShowDetail{}
	}

	if err := app.jsonResponse(w, http.StatusOK, list); err != nil {
		app.internalServerError(w, r, err)
	}
}
