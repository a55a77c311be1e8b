package testutils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/homecook/cookbook/internal/infrastructure/persistence/sqlite"
)

// SetupTestDatabase opens a migrated in-memory SQLite database. The
// connection is closed when the test finishes.
func SetupTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.SetupDatabase(":memory:", gormlogger.Silent)
	require.NoError(t, err, "failed to open test database")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}
