package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"fyyur/docs"
	"fyyur/internal/clock"
	"fyyur/internal/domain/storage"
	"fyyur/internal/flash"
	"fyyur/internal/ratelimiter"
	"fyyur/internal/web"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config      config
	store       *storage.Container
	logger      *zap.SugaredLogger
	templates   *web.Renderer
	flash       *flash.Signer
	clock       clock.Clock
	images      imageUploader
	rateLimiter ratelimiter.Limiter
}

type config struct {
	addr          string
	db            dbConfig
	env           string
	apiURL        string
	flashSecret   string
	auth          basicConfig
	cloudinaryURL string
	rateLimiter   ratelimiter.Config
}

type basicConfig struct {
	user string
	pass string
}

type dbConfig struct {
	addr         string
	maxOpenConns int32
	maxIdleTime  string
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.NotFound(app.notFoundPage)

	r.Get("/", app.homeHandler)

	r.Route("/venues", func(r chi.Router) {
		r.Get("/", app.listVenuesHandler)
		r.With(app.RateLimiterMiddleware).Post("/search", app.searchVenuesHandler)
		r.Get("/create", app.createVenueFormHandler)
		r.With(app.RateLimiterMiddleware).Post("/create", app.createVenueHandler)

		r.Get("/{venueID}", app.showVenueHandler)
		r.With(app.RateLimiterMiddleware).Delete("/{venueID}", app.deleteVenueHandler)
		// HTML forms cannot send DELETE.
		r.With(app.RateLimiterMiddleware).Post("/{venueID}/delete", app.deleteVenueHandler)
		r.Get("/{venueID}/edit", app.editVenueFormHandler)
		r.With(app.RateLimiterMiddleware).Post("/{venueID}/edit", app.editVenueHandler)
	})

	r.Route("/artists", func(r chi.Router) {
		r.Get("/", app.listArtistsHandler)
		r.With(app.RateLimiterMiddleware).Post("/search", app.searchArtistsHandler)
		r.Get("/create", app.createArtistFormHandler)
		r.With(app.RateLimiterMiddleware).Post("/create", app.createArtistHandler)

		r.Get("/{artistID}", app.showArtistHandler)
		r.With(app.RateLimiterMiddleware).Delete("/{artistID}", app.deleteArtistHandler)
		r.With(app.RateLimiterMiddleware).Post("/{artistID}/delete", app.deleteArtistHandler)
		r.Get("/{artistID}/edit", app.editArtistFormHandler)
		r.With(app.RateLimiterMiddleware).Post("/{artistID}/edit", app.editArtistHandler)
	})

	r.Route("/shows", func(r chi.Router) {
		r.Get("/", app.listShowsHandler)
		r.Get("/create", app.createShowFormHandler)
		r.With(app.RateLimiterMiddleware).Post("/create", app.createShowHandler)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"https://*", "http://*"},
			AllowedMethods:   []string{"GET", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: false,
			MaxAge:           300, // Maximum value not ignored by any of major browsers
		}))

		r.Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/api/v1/swagger/doc.json", app.config.apiURL)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Get("/venues", app.apiListVenuesHandler)
		r.Get("/venues/{venueID}", app.apiGetVenueHandler)
		r.Get("/artists", app.apiListArtistsHandler)
		r.Get("/artists/{artistID}", app.apiGetArtistHandler)
		r.Get("/shows", app.apiListShowsHandler)
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
