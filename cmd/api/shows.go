package main

import (
	"net/http"

	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/storage"
	"fyyur/internal/flash"
)

func (app *application) listShowsHandler(w http.ResponseWriter, r *http.Request) {
	list, err := app.store.Shows.List(r.Context())
	if err != nil {
		app.serverErrorPage(w, r, err)
		return
	}

	app.render(w, r, http.StatusOK, "pages/shows.html", &templateData{Shows: list})
}

func (app *application) createShowFormHandler(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusOK, "forms/new_show.html", &templateData{ShowForm: &showForm{}})
}

// createShowHandler books an artist at a venue. Unknown artist or venue IDs
// are rejected by the foreign keys and reported like any other failed write.
func (app *application) createShowHandler(w http.ResponseWriter, r *http.Request) {
	var form showForm
	if err := decodeForm(w, r, &form); err != nil {
		app.logger.Warnw("bad show form", "path", r.URL.Path, "error", err.Error())
		app.render(w, r, http.StatusBadRequest, "forms/new_show.html", &templateData{
			Flashes:  []flash.Message{flash.Errorf("The form could not be read.")},
			ShowForm: &form,
		})
		return
	}

	var show *shows.Show
	errs := validateForm(&form)
	if errs == nil {
		show, errs = form.toShow()
	}
	if errs != nil {
		app.render(w, r, http.StatusUnprocessableEntity, "forms/new_show.html", &templateData{ShowForm: &form, Errors: errs})
		return
	}

	err := app.store.WithTx(r.Context(), func(tx *storage.Tx) error {
		return tx.Shows.Create(r.Context(), show)
	})
	if err != nil {
		app.logWriteFailure(r, "show", err)
		app.render(w, r, writeFailureStatus(err), "pages/home.html", &templateData{
			Flashes: []flash.Message{writeFailure("Show", "", "listed", err)},
		})
		return
	}

	app.render(w, r, http.StatusOK, "pages/home.html", &templateData{
		Flashes: []flash.Message{flash.Successf("Show was successfully listed!")},
	})
}
