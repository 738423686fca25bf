package visits

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"database/sql"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"golang.org/x/crypto/ssh"
)

func openDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)

	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })

	require.NoError(t, CreateTables(context.Background(), db))
	return db
}

func newKey(t *testing.T) ssh.PublicKey {
	t.Helper()

	pub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)
	key, err := ssh.NewPublicKey(pub)
	require.NoError(t, err)
	return key
}

func TestFingerprint(t *testing.T) {
	assert.Equal(t, Anonymous, Fingerprint(nil))

	key := newKey(t)
	assert.True(t, strings.HasPrefix(Fingerprint(key), "SHA256:"))
	assert.Equal(t, Fingerprint(key), Fingerprint(key))
}

func TestRecordAndCount(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	alice, bob := newKey(t), newKey(t)
	require.NoError(t, Record(ctx, db, alice))
	require.NoError(t, Record(ctx, db, alice))
	require.NoError(t, Record(ctx, db, bob))
	require.NoError(t, Record(ctx, db, nil))
	require.NoError(t, Record(ctx, db, nil))

	count, err := Count(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	unique, err := Unique(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, 3, unique)
}

func TestCreateTablesIsRepeatable(t *testing.T) {
	db := openDB(t)
	assert.NoError(t, CreateTables(context.Background(), db))
}

func TestCountWithoutTable(t *testing.T) {
	sqldb, err := sql.Open("sqlite3", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	defer db.Close()

	_, err = Count(context.Background(), db)
	assert.ErrorContains(t, err, "could not count visits")
}
