package main

import (
	"context"
	"os"

	"github.com/shivamrai009/portfolio/internal/config"
	"github.com/shivamrai009/portfolio/internal/content"
	"github.com/shivamrai009/portfolio/internal/logging"
	"github.com/shivamrai009/portfolio/internal/server"
	"github.com/shivamrai009/portfolio/internal/theme"
	"github.com/shivamrai009/portfolio/internal/utils"
	"github.com/shivamrai009/portfolio/internal/visits"
	"github.com/uptrace/bun"
)

func main() {
	logger := logging.Setup(os.Stderr, config.Core.Debug)
	ctx := context.Background()

	portfolio, err := content.Load(config.Core.ContentPath)
	if err != nil {
		logger.Fatal("could not load portfolio", "err", err)
	}

	palettes, err := theme.Builtin()
	if err != nil {
		logger.Fatal("could not load themes", "err", err)
	}

	var db *bun.DB
	if config.Core.VisitsEnabled {
		db, err = utils.OpenDB(config.Core.DBURI)
		if err != nil {
			logger.Fatal("could not open db", "uri", config.Core.DBURI, "err", err)
		}
		defer db.Close()

		if config.Core.DBMigrate {
			if err := visits.CreateTables(ctx, db); err != nil {
				logger.Fatal("could not migrate db", "err", err)
			}
		}
	}

	runtime, err := server.New(
		config.Settings{Core: config.Core, SSH: config.SSH},
		logger,
		db,
		portfolio,
		palettes,
	)
	if err != nil {
		logger.Fatal("could not create ssh server", "err", err)
	}

	if err := runtime.Run(ctx); err != nil {
		logger.Error("ssh server failed", "err", err)
		os.Exit(1)
	}
}
