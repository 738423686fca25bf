package visits

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/ssh"
)

// Used for visitors that logged in without a public key.
const Anonymous = "anonymous"

// One interactive session on the portfolio.
type Visit struct {
	ID          int64  `bun:",pk,autoincrement"`
	Fingerprint string `bun:",notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Creates the tables used by this package if they are missing.
func CreateTables(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().Model(&Visit{}).IfNotExists().Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "could not create visits table")
	}

	_, err = db.NewCreateIndex().
		Model(&Visit{}).
		Index("visits_fingerprint_idx").
		Column("fingerprint").
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "could not create visits index")
	}

	return nil
}

// Returns the identity a visit is stored under.
func Fingerprint(key ssh.PublicKey) string {
	if key == nil {
		return Anonymous
	}
	return ssh.FingerprintSHA256(key)
}

// Record a visit by the owner of the key, which may be nil.
func Record(ctx context.Context, db *bun.DB, key ssh.PublicKey) error {
	visit := Visit{Fingerprint: Fingerprint(key)}
	if _, err := db.NewInsert().Model(&visit).Exec(ctx); err != nil {
		return errors.Wrap(err, "could not record visit")
	}

	slog.Debug("recorded visit", "id", visit.ID, "fingerprint", visit.Fingerprint)
	return nil
}

// Total number of visits.
func Count(ctx context.Context, db *bun.DB) (int, error) {
	count, err := db.NewSelect().Model(&Visit{}).Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "could not count visits")
	}
	return count, nil
}

// Number of distinct keys that visited. Anonymous visitors count once.
func Unique(ctx context.Context, db *bun.DB) (int, error) {
	var count int
	err := db.NewSelect().
		Model(&Visit{}).
		ColumnExpr("COUNT(DISTINCT fingerprint)").
		Scan(ctx, &count)
	if err != nil {
		return 0, errors.Wrap(err, "could not count visitors")
	}
	return count, nil
}
