// Package flash carries one-shot user messages across a redirect in a signed cookie.
package flash

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "fyyur_flash"

type Category string

const (
	Success Category = "success"
	Error   Category = "error"
)

type Message struct {
	Category Category `json:"category"`
	Text     string   `json:"text"`
}

func Successf(format string, args ...any) Message {
	return Message{Category: Success, Text: fmt.Sprintf(format, args...)}
}

func Errorf(format string, args ...any) Message {
	return Message{Category: Error, Text: fmt.Sprintf(format, args...)}
}

type claims struct {
	Messages []Message `json:"msgs"`
	jwt.RegisteredClaims
}

// Signer writes and reads flash cookies as HS256 tokens so a client cannot
// forge messages.
type Signer struct {
	secret []byte
	iss    string
	ttl    time.Duration
}

func NewSigner(secret, iss string) *Signer {
	return &Signer{secret: []byte(secret), iss: iss, ttl: 5 * time.Minute}
}

// Set stores msgs for the next request, replacing any pending messages.
func (s *Signer) Set(w http.ResponseWriter, msgs ...Message) error {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Messages: msgs,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.iss,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return fmt.Errorf("sign flash: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Pop returns the pending messages and clears the cookie. A missing, expired
// or tampered cookie yields no messages.
func (s *Signer) Pop(w http.ResponseWriter, r *http.Request) []Message {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var c claims
	_, err = jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(s.iss),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil {
		return nil
	}
	return c.Messages
}
