package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/shivamrai009/portfolio/internal/config"
	"github.com/shivamrai009/portfolio/internal/logging"
	"github.com/shivamrai009/portfolio/internal/utils"
	"github.com/shivamrai009/portfolio/internal/visits"
)

func main() {
	logger := logging.Setup(os.Stderr, config.Core.Debug)

	db, err := utils.OpenDB(config.Core.DBURI)
	if err != nil {
		logger.Fatal("could not open db", "uri", config.Core.DBURI, "err", err)
	}
	defer db.Close()

	// Tables are only ever created, the schema has not changed yet.
	ctx := context.Background()
	if err := visits.CreateTables(ctx, db); err != nil {
		logger.Fatal("could not create tables", "err", err)
	}
	slog.Info("created tables", "uri", config.Core.DBURI)

	count, err := visits.Count(ctx, db)
	if err != nil {
		logger.Fatal("could not count visits", "err", err)
	}
	slog.Info("visits", "total", count)
}
