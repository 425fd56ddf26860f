package main

import (
	"net/http"

	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/genres"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/venues"
	"fyyur/internal/flash"
	"fyyur/internal/web"
)

type templateData struct {
	Flashes []flash.Message

	Areas   []venues.Area
	Venue   *venueDetail
	Artist  *artistDetail
	Artists []artists.ArtistSummary
	Shows   []shows.ShowDetail
	Search  *searchResults

	VenueForm  *venueForm
	ArtistForm *artistForm
	ShowForm   *showForm
	Errors     map[string]string
	EditID     int64

	Genres []string
	States []string
}

type searchResults struct {
	Kind  string       `json:"-"` // "venues" or "artists", used to build links
	Term  string       `json:"search_term"`
	Count int          `json:"count"`
	Data  []searchItem `json:"data"`
}

type searchItem struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// render writes page with data, merging in any flash messages carried over
// from a redirect. Flashes popped from the cookie come first.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data *templateData) {
	if data == nil {
		data = &templateData{}
	}
	data.Flashes = append(app.flash.Pop(w, r), data.Flashes...)
	data.Genres = genres.Choices
	data.States = web.States

	if err := app.templates.Render(w, status, page, data); err != nil {
		app.logger.Errorw("render failed", "page", page, "path", r.URL.Path, "error", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// redirectWithFlash stores msg for the next page and sends a 303 to url.
func (app *application) redirectWithFlash(w http.ResponseWriter, r *http.Request, url string, msg flash.Message) {
	if err := app.flash.Set(w, msg); err != nil {
		app.logger.Errorw("set flash failed", "path", r.URL.Path, "error", err.Error())
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

func (app *application) homeHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "pages/home.html", nil)
}
