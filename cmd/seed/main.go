package main

import (
	"context"
	"flag"
	"os"

	"github.com/infinitechange/coaching-site/internal/infrastructure/db/sqlite"
	"github.com/infinitechange/coaching-site/pkg/logger"
)

// Seeds the catalogue and testimonial tables with starter content. Safe to
// run repeatedly: populated tables are skipped.
func main() {
	defaultPath := os.Getenv("DATABASE_PATH")
	if defaultPath == "" {
		defaultPath = "coaching.db"
	}
	path := flag.String("db", defaultPath, "path to the SQLite database file")
	flag.Parse()

	logger.Init(logger.Options{Pretty: true})
	log := logger.Get()

	db, err := sqlite.Connect(*path)
	if err != nil {
		log.Fatal().Err(err).Str("path", *path).Msg("connect database")
	}
	defer sqlite.Close(db)

	if err := sqlite.Seed(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}
	log.Info().Str("path", *path).Msg("seed complete")
}
