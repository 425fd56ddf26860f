package main

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fyyur/internal/domain/artists"
	"fyyur/internal/domain/genres"
	"fyyur/internal/domain/shows"
	"fyyur/internal/domain/venues"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

const maxFormBytes = 10 << 20 // 10MB, room for an uploaded image

var formDecoder = newFormDecoder()

func newFormDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true) // csrf tokens, submit buttons, image_file
	return d
}

// decodeForm parses a urlencoded or multipart body and decodes it into dst.
func decodeForm(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)

	var err error
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		err = r.ParseMultipartForm(maxFormBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return fmt.Errorf("parse form: %w", err)
	}

	return formDecoder.Decode(dst, r.PostForm)
}

// validateForm returns nil when form is valid, otherwise one message per
// offending field keyed by the field's form name.
func validateForm(form any) map[string]string {
	err := Validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = "This field is required."
	}
	return out
}

// checkbox mirrors the browser convention used by the forms: only "y" is true.
func checkbox(v string) bool {
	return v == "y"
}

func checkboxValue(b bool) string {
	if b {
		return "y"
	}
	return ""
}

type venueForm struct {
	Name               string   `schema:"name" validate:"notblank"`
	City               string   `schema:"city" validate:"notblank"`
	State              string   `schema:"state" validate:"notblank"`
	Address            string   `schema:"address" validate:"notblank"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres" validate:"min=1"`
	ImageLink          string   `schema:"image_link"`
	FacebookLink       string   `schema:"facebook_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingTalent      string   `schema:"seeking_talent"`
	SeekingDescription string   `schema:"seeking_description"`
}

func (f *venueForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Address = strings.TrimSpace(f.Address)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Genres = genres.Normalize(f.Genres)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
}

func (f *venueForm) toVenue(id int64) *venues.Venue {
	return &venues.Venue{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Address:            f.Address,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingTalent:      checkbox(f.SeekingTalent),
		SeekingDescription: f.SeekingDescription,
	}
}

func venueFormFrom(v *venues.Venue) *venueForm {
	return &venueForm{
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             v.Genres,
		ImageLink:          v.ImageLink,
		FacebookLink:       v.FacebookLink,
		WebsiteLink:        v.WebsiteLink,
		SeekingTalent:      checkboxValue(v.SeekingTalent),
		SeekingDescription: v.SeekingDescription,
	}
}

type artistForm struct {
	Name               string   `schema:"name" validate:"notblank"`
	City               string   `schema:"city" validate:"notblank"`
	State              string   `schema:"state" validate:"notblank"`
	Phone              string   `schema:"phone"`
	Genres             []string `schema:"genres" validate:"min=1"`
	ImageLink          string   `schema:"image_link"`
	FacebookLink       string   `schema:"facebook_link"`
	WebsiteLink        string   `schema:"website_link"`
	SeekingVenue       string   `schema:"seeking_venue"`
	SeekingDescription string   `schema:"seeking_description"`
}

func (f *artistForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.City = strings.TrimSpace(f.City)
	f.State = strings.TrimSpace(f.State)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Genres = genres.Normalize(f.Genres)
	f.ImageLink = strings.TrimSpace(f.ImageLink)
	f.FacebookLink = strings.TrimSpace(f.FacebookLink)
	f.WebsiteLink = strings.TrimSpace(f.WebsiteLink)
}

func (f *artistForm) toArtist(id int64) *artists.Artist {
	return &artists.Artist{
		ID:                 id,
		Name:               f.Name,
		City:               f.City,
		State:              f.State,
		Phone:              f.Phone,
		Genres:             f.Genres,
		ImageLink:          f.ImageLink,
		FacebookLink:       f.FacebookLink,
		WebsiteLink:        f.WebsiteLink,
		SeekingVenue:       checkbox(f.SeekingVenue),
		SeekingDescription: f.SeekingDescription,
	}
}

func artistFormFrom(a *artists.Artist) *artistForm {
	return &artistForm{
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             a.Genres,
		ImageLink:          a.ImageLink,
		FacebookLink:       a.FacebookLink,
		WebsiteLink:        a.WebsiteLink,
		SeekingVenue:       checkboxValue(a.SeekingVenue),
		SeekingDescription: a.SeekingDescription,
	}
}

type showForm struct {
	ArtistID  string `schema:"artist_id" validate:"notblank"`
	VenueID   string `schema:"venue_id" validate:"notblank"`
	StartTime string `schema:"start_time" validate:"notblank"`
}

var startTimeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
}

// parseStartTime accepts the form's "YYYY-MM-DD HH:MM:SS" plus the
// datetime-local and RFC 3339 variants. Times without a zone are local.
func parseStartTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized start time %q", s)
}

// toShow converts the form, returning per-field errors for values that are
// present but unusable.
func (f *showForm) toShow() (*shows.Show, map[string]string) {
	errs := make(map[string]string)

	artistID, err := strconv.ParseInt(strings.TrimSpace(f.ArtistID), 10, 64)
	if err != nil {
		errs["artist_id"] = "Enter a numeric artist ID."
	}
	venueID, err := strconv.ParseInt(strings.TrimSpace(f.VenueID), 10, 64)
	if err != nil {
		errs["venue_id"] = "Enter a numeric venue ID."
	}
	start, err := parseStartTime(f.StartTime)
	if err != nil {
		errs["start_time"] = "Use the format YYYY-MM-DD HH:MM:SS."
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return &shows.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}
