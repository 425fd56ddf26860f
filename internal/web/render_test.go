package web

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, "medium"))
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime(ts, "full"))
}

func TestNewRendererParsesEveryPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, page := range []string{
		"pages/home.html",
		"pages/venues.html",
		"pages/artists.html",
		"pages/search.html",
		"pages/show_venue.html",
		"pages/show_artist.html",
		"pages/shows.html",
		"forms/new_venue.html",
		"forms/edit_venue.html",
		"forms/new_artist.html",
		"forms/edit_artist.html",
		"forms/new_show.html",
		"errors/404.html",
		"errors/500.html",
	} {
		assert.Contains(t, r.pages, page)
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	t.Run("writes status and body", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := r.Render(rec, http.StatusNotFound, "errors/404.html", struct{ Flashes []any }{})
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Body.String(), "Not Found")
	})

	t.Run("unknown page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := r.Render(rec, http.StatusOK, "pages/missing.html", nil)
		assert.Error(t, err)
		assert.Zero(t, rec.Body.Len())
	})
}
