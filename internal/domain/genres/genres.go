// Package genres normalizes the music genre lists attached to venues and artists.
package genres

import (
	"slices"
	"strings"
)

// Choices are the genres offered by the venue and artist forms.
var Choices = []string{
	"Alternative",
	"Blues",
	"Classical",
	"Country",
	"Electronic",
	"Folk",
	"Funk",
	"Hip-Hop",
	"Heavy Metal",
	"Instrumental",
	"Jazz",
	"Musical Theatre",
	"Pop",
	"Punk",
	"R&B",
	"Reggae",
	"Rock n Roll",
	"Soul",
	"Other",
}

// Normalize trims every entry, drops blanks and duplicates and keeps the
// submitted order. A single legacy value in postgres array literal form
// ("{Jazz,Rock n Roll}") is expanded into its elements.
func Normalize(values []string) []string {
	if len(values) == 1 {
		values = expandLegacy(values[0])
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(out, v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func expandLegacy(raw string) []string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "{") || !strings.HasSuffix(raw, "}") {
		return []string{raw}
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(raw, "{"), "}")
	parts := strings.Split(inner, ",")
	for i, p := range parts {
		parts[i] = strings.Trim(strings.TrimSpace(p), `"`)
	}
	return parts
}

// Contains reports whether list holds genre, ignoring case.
func Contains(list []string, genre string) bool {
	return slices.ContainsFunc(list, func(g string) bool {
		return strings.EqualFold(g, genre)
	})
}
