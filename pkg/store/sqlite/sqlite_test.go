package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.db")

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`
		CREATE TABLE users (name TEXT, age INTEGER);
		INSERT INTO users VALUES ('Alice', 42);
		INSERT INTO users VALUES ('Bob', 69);
		INSERT INTO users VALUES (NULL, NULL);
	`)
	require.NoError(t, err)

	return path
}

func TestConnector_QueryExistingDatabase(t *testing.T) {
	path := setupTestDB(t)
	ctx := context.Background()

	conn, err := NewConnector().Connect(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, conn.Close())
	})

	result, err := conn.Query(ctx, "select name, age from users order by rowid")
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "age"}, result.Columns)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, "Alice", result.Rows[0]["name"])
	assert.Equal(t, int64(42), result.Rows[0]["age"])
	assert.Equal(t, "Bob", result.Rows[1]["name"])
	assert.Nil(t, result.Rows[2]["name"])
	assert.Nil(t, result.Rows[2]["age"])
}

func TestConnector_QueryFailure(t *testing.T) {
	path := setupTestDB(t)
	ctx := context.Background()

	conn, err := NewConnector().Connect(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, conn.Close())
	})

	_, err = conn.Query(ctx, "select * from missing_table")
	assert.Error(t, err)
}

func TestConnector_MissingDatabaseFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.db")

	_, err := NewConnector().Connect(context.Background(), missing)
	assert.ErrorContains(t, err, "not accessible")
}
