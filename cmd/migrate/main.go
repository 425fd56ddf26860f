package main

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"fyyur/internal/db"
	"fyyur/migrations"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	conn, err := sql.Open("postgres", db.DSNFromEnv())
	if err != nil {
		logger.Fatalw("open database", "error", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	applied, err := migrations.Apply(ctx, conn)
	if err != nil {
		logger.Errorw("migration failed", "error", err)
		os.Exit(1)
	}

	if len(applied) == 0 {
		logger.Info("database is up to date")
		return
	}
	for _, name := range applied {
		logger.Infow("applied migration", "file", name)
	}
}
