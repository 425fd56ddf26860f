package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"expvar"
	"fmt"
	"log"
	"os"
	"runtime"
	"strconv"
	"time"

	"fyyur/internal/clock"
	"fyyur/internal/db"
	"fyyur/internal/domain/storage"
	"fyyur/internal/flash"
	"fyyur/internal/ratelimiter"
	"fyyur/internal/web"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	defaultRequests := 200
	defaultEnabled := false

	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel
	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

var version = "1.0.0"

//	@title			Fyyur API
//	@description	Read-only JSON view of the Fyyur venue, artist and show directory.

//	@license.name	MIT

//	@BasePath	/api/v1

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	maxOpenConns, err := strconv.Atoi(getenv("DB_MAX_OPEN_CONNS", "10"))
	if err != nil {
		log.Fatalf("Invalid value for DB_MAX_OPEN_CONNS: %v", err)
	}

	cfg := config{
		addr:   getenv("ADDR", ":5000"),
		env:    getenv("ENV", "development"),
		apiURL: getenv("EXTERNAL_URL", "localhost:5000"),
		db: dbConfig{
			addr:         db.DSNFromEnv(),
			maxOpenConns: int32(maxOpenConns),
			maxIdleTime:  getenv("DB_MAX_IDLE_TIME", "15m"),
		},
		flashSecret: os.Getenv("FLASH_SECRET"),
		auth: basicConfig{
			user: os.Getenv("AUTH_BASIC_USER"),
			pass: os.Getenv("AUTH_BASIC_PASS"),
		},
		cloudinaryURL: os.Getenv("CLOUDINARY_URL"),
		rateLimiter:   LoadRateLimiterConfig(),
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.flashSecret == "" {
		cfg.flashSecret = randomSecret()
		logger.Warn("FLASH_SECRET not set, using a random secret; flash messages will not survive restarts")
	}

	pool, err := db.New(cfg.db.addr, cfg.db.maxOpenConns, cfg.db.maxIdleTime)
	if err != nil {
		logger.Fatal(err)
	}
	defer pool.Close()
	logger.Info("database connection pool established")

	templates, err := web.NewRenderer()
	if err != nil {
		logger.Fatal(err)
	}

	var images imageUploader
	if cfg.cloudinaryURL != "" {
		cld, err := cloudinary.NewFromURL(cfg.cloudinaryURL)
		if err != nil {
			logger.Fatal(err)
		}
		images = &cloudinaryUploader{cld: cld}
		logger.Info("image uploads enabled")
	}

	limiter := ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame)
	if cfg.rateLimiter.Enabled {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go limiter.Run(ctx)
	}

	app := &application{
		config:      cfg,
		store:       storage.NewContainer(pool),
		logger:      logger,
		templates:   templates,
		flash:       flash.NewSigner(cfg.flashSecret, "fyyur"),
		clock:       clock.NewSystem(),
		images:      images,
		rateLimiter: limiter,
	}

	// Metrics collected at /api/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("database", expvar.Func(func() any {
		stat := pool.Stat()
		return map[string]any{
			"total_conns":    stat.TotalConns(),
			"idle_conns":     stat.IdleConns(),
			"acquired_conns": stat.AcquiredConns(),
			"max_conns":      stat.MaxConns(),
		}
	}))
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}

func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}
