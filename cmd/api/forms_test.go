package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStartTime(t *testing.T) {
	want := time.Date(2026, 7, 1, 20, 0, 0, 0, time.Local)

	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2026-07-01 20:00:00", want: want},
		{in: "2026-07-01 20:00", want: want},
		{in: "2026-07-01T20:00:00", want: want},
		{in: " 2026-07-01T20:00 ", want: want},
		{in: "2026-07-01T20:00:00Z", want: time.Date(2026, 7, 1, 20, 0, 0, 0, time.UTC)},
		{in: "07/01/2026", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseStartTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %s", got)
		})
	}
}

func TestValidateFormUsesFormNames(t *testing.T) {
	errs := validateForm(&venueForm{Name: "x", City: "y", State: "CA"})

	assert.Equal(t, map[string]string{
		"address": "This field is required.",
		"genres":  "This field is required.",
	}, errs)

	assert.Nil(t, validateForm(&showForm{ArtistID: "1", VenueID: "1", StartTime: "2026-07-01 20:00:00"}))
}

func TestVenueFormRoundTrip(t *testing.T) {
	form := venueForm{
		Name:          "  The Dueling Pianos Bar ",
		City:          "New York",
		State:         "NY",
		Address:       "335 Delancey Street",
		Genres:        []string{"Classical", " R&B ", "Classical"},
		SeekingTalent: "y",
	}
	form.normalize()

	v := form.toVenue(7)
	assert.Equal(t, int64(7), v.ID)
	assert.Equal(t, "The Dueling Pianos Bar", v.Name)
	assert.Equal(t, []string{"Classical", "R&B"}, v.Genres)
	assert.True(t, v.SeekingTalent)

	back := venueFormFrom(v)
	assert.Equal(t, "y", back.SeekingTalent)
	assert.Equal(t, v.Genres, back.Genres)
}

type fakeUploader struct {
	got    []byte
	folder string
	err    error
}

func (f *fakeUploader) Upload(_ context.Context, file io.Reader, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.got, _ = io.ReadAll(file)
	f.folder = folder
	return "https://res.cloudinary.example/fyyur/" + folder + "/abc.jpg", nil
}

func multipartVenue(t *testing.T, image []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for key, values := range validVenueForm() {
		for _, v := range values {
			require.NoError(t, mw.WriteField(key, v))
		}
	}
	if image != nil {
		fw, err := mw.CreateFormFile(imageFileField, "hop.jpg")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/venues/create", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestCreateVenueWithImageUpload(t *testing.T) {
	t.Run("uploaded file replaces image_link", func(t *testing.T) {
		app, mem := newTestApplication(t)
		up := &fakeUploader{}
		app.images = up

		rr := executeRequest(multipartVenue(t, []byte("jpeg bytes")), app.mount())
		require.Equal(t, http.StatusOK, rr.Code)

		assert.Equal(t, "venues", up.folder)
		assert.Equal(t, []byte("jpeg bytes"), up.got)
		assert.Equal(t, "https://res.cloudinary.example/fyyur/venues/abc.jpg", mem.venues[1].ImageLink)
	})

	t.Run("no file keeps the form values", func(t *testing.T) {
		app, mem := newTestApplication(t)
		app.images = &fakeUploader{err: errors.New("must not be called")}

		rr := executeRequest(multipartVenue(t, nil), app.mount())
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, mem.venues[1].ImageLink)
	})

	t.Run("upload failure is a failed write", func(t *testing.T) {
		app, mem := newTestApplication(t)
		app.images = &fakeUploader{err: errors.New("cloudinary upload: quota exceeded")}

		rr := executeRequest(multipartVenue(t, []byte("jpeg bytes")), app.mount())
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Contains(t, rr.Body.String(), "could not be listed.")
		assert.Empty(t, mem.venues)
	})
}
