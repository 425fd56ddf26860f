package main

import (
	"errors"
	"net/http"
	"strings"

	"fyyur/internal/domain/shows"
	"fyyur/internal/flash"
	"fyyur/internal/infra/dbx"
)

// JSON responses

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJSONError(w, http.StatusNotFound, "not found")
}

func (app *application) unauthorizedBasicErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("unauthorized basic error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	w.Header().Set("WWW-Authenticate", `Basic realm="restricted", charset="UTF-8"`)

	writeJSONError(w, http.StatusUnauthorized, "unauthorized")
}

func (app *application) rateLimitExceededResponse(w http.ResponseWriter, r *http.Request, retryAfter string) {
	app.logger.Warnw("rate limit exceeded", "method", r.Method, "path", r.URL.Path)

	w.Header().Set("Retry-After", retryAfter)

	writeJSONError(w, http.StatusTooManyRequests, "rate limit exceeded, retry after: "+retryAfter)
}

// HTML responses

func (app *application) notFoundPage(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "errors/404.html", nil)
}

func (app *application) serverErrorPage(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	app.render(w, r, http.StatusInternalServerError, "errors/500.html", nil)
}

// readFailed renders the page matching a failed read: 404 for missing
// records, 500 for everything else.
func (app *application) readFailed(w http.ResponseWriter, r *http.Request, err error) {
	if isNotFound(err) {
		app.notFoundPage(w, r)
		return
	}
	app.serverErrorPage(w, r, err)
}

func isNotFound(err error) bool {
	return errors.Is(err, dbx.ErrNotFound) || errors.Is(err, shows.ErrCounterpartNotFound)
}

// writeFailure builds the flash shown when a create, edit or delete did not
// go through, e.g. "An error occurred. Venue The Dive could not be listed."
// Known causes are named after the sentence.
func writeFailure(entity, name, verb string, err error) flash.Message {
	subject := entity
	if name = strings.TrimSpace(name); name != "" {
		subject += " " + name
	}

	msg := flash.Errorf("An error occurred. %s could not be %s.", subject, verb)
	switch {
	case errors.Is(err, dbx.ErrInvalidReference):
		msg.Text += " The venue or artist does not exist."
	case errors.Is(err, dbx.ErrConflict):
		msg.Text += " It already exists."
	case errors.Is(err, dbx.ErrNotFound):
		msg.Text += " It no longer exists."
	}
	return msg
}

// writeFailureStatus picks the status code for a failed write.
func writeFailureStatus(err error) int {
	switch {
	case errors.Is(err, dbx.ErrInvalidReference):
		return http.StatusUnprocessableEntity
	case errors.Is(err, dbx.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, dbx.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func (app *application) logWriteFailure(r *http.Request, entity string, err error) {
	app.logger.Errorw("store write failed", "entity", entity, "method", r.Method, "path", r.URL.Path, "error", err.Error())
}
