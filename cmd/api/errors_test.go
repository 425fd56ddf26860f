package main

import (
	"fmt"
	"net/http"
	"testing"

	"fyyur/internal/flash"
	"fyyur/internal/infra/dbx"

	"github.com/stretchr/testify/assert"
)

func TestWriteFailure(t *testing.T) {
	tests := []struct {
		name       string
		entity     string
		subject    string
		verb       string
		err        error
		wantText   string
		wantStatus int
	}{
		{
			name:       "generic store failure",
			entity:     "Venue",
			subject:    "The Musical Hop",
			verb:       "listed",
			err:        errStoreDown,
			wantText:   "An error occurred. Venue The Musical Hop could not be listed.",
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "invalid reference",
			entity:     "Show",
			verb:       "listed",
			err:        fmt.Errorf("create show: %w", dbx.ErrInvalidReference),
			wantText:   "An error occurred. Show could not be listed. The venue or artist does not exist.",
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "conflict",
			entity:     "Artist",
			subject:    "Matt Quevedo",
			verb:       "listed",
			err:        dbx.ErrConflict,
			wantText:   "An error occurred. Artist Matt Quevedo could not be listed. It already exists.",
			wantStatus: http.StatusConflict,
		},
		{
			name:       "gone",
			entity:     "Venue",
			verb:       "deleted",
			err:        fmt.Errorf("get venue 3: %w", dbx.ErrNotFound),
			wantText:   "An error occurred. Venue could not be deleted. It no longer exists.",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := writeFailure(tt.entity, tt.subject, tt.verb, tt.err)
			assert.Equal(t, flash.Error, msg.Category)
			assert.Equal(t, tt.wantText, msg.Text)
			assert.Equal(t, tt.wantStatus, writeFailureStatus(tt.err))
		})
	}
}
