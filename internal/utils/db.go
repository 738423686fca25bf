package utils

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Opens the sqlite database at uri and verifies it can be reached.
func OpenDB(uri string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", uri)
	if err != nil {
		return nil, errors.Wrap(err, "could not open db")
	}

	// sqlite does not deal with concurrent writers well.
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "could not reach db")
	}

	return db, nil
}
