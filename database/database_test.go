package database

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database with the full schema applied.
// The shared-cache DSN keeps every pooled connection on the same database.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	return db
}

func TestDatabaseAccessors(t *testing.T) {
	d := New(testDB(t))

	require.NotNil(t, d.CvRepo())
	require.NotNil(t, d.ProjectRepo())
	require.NotNil(t, d.ExerciseRepo())
	require.NotNil(t, d.UserRepo())
}
