package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnect_SQLiteInMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err, "sqlite driver must be registered")
	require.NoError(t, Migrate(db))

	// Schema is usable after migration.
	var n int64
	require.NoError(t, db.Table("offices").Count(&n).Error)
	require.Zero(t, n)
}
