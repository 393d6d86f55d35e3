package migrations

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edmsantos/account-api/internal/database"
)

func setupMigratorTest(t *testing.T) (*Migrator, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	migrator := NewMigrator(&database.Pool{DB: db})
	cleanup := func() {
		mock.ExpectClose()
		if err := db.Close(); err != nil {
			t.Errorf("failed to close database: %v", err)
		}
	}
	return migrator, mock, cleanup
}

func TestGetMigrations(t *testing.T) {
	migrations := GetMigrations()
	require.Len(t, migrations, 2)

	// The users table must exist before reset_tokens references it
	assert.Equal(t, "create_users_table", migrations[0].Name)
	assert.Equal(t, "users", migrations[0].TableName)
	assert.Equal(t, "create_reset_tokens_table", migrations[1].Name)
	assert.Equal(t, "reset_tokens", migrations[1].TableName)

	for _, m := range migrations {
		assert.NotEmpty(t, m.Description)
		assert.NotNil(t, m.RunSQL)
	}
}

func TestRunMigrations_FreshDatabase(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	for _, table := range []string{"users", "reset_tokens"} {
		mock.ExpectQuery("SELECT EXISTS").
			WithArgs(table).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectBegin()
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + table).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec("INSERT INTO migrations").
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()
	}

	err := migrator.RunMigrations(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_AlreadyExecuted(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("create_users_table").
			AddRow("create_reset_tokens_table"))

	// No table checks or DDL when every migration is recorded
	err := migrator.RunMigrations(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrations_ExistingTableRecordedWithoutRunning(t *testing.T) {
	migrator, mock, cleanup := setupMigratorTest(t)
	defer cleanup()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS migrations").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT name FROM migrations").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("create_reset_tokens_table"))

	// users table exists from a pre-framework deployment
	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("users").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec("INSERT INTO migrations").
		WithArgs("create_users_table", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := migrator.RunMigrations(context.Background())
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
