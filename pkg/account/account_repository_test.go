package account

import (
	"context"
	"testing"

	"recipebook/entities"
	"recipebook/internal/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestAccountRepository_CreateUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	user := &entities.User{Username: "alice", Password: "secret"}
	err := repo.CreateUser(context.Background(), user)

	assert.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_DeleteUser(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))

	// Ratings first, then favorites memberships, then the user row itself.
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "ratings" WHERE user_id = \$1`).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "user_favorites"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteUser(context.Background(), 7)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_DeleteUserNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "ratings" WHERE user_id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "user_favorites"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "users"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteUser(context.Background(), 99)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_GetUsersOrdersByIDDesc(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))

	rows := sqlmock.NewRows([]string{"id", "username", "password"}).
		AddRow(2, "bob", "hunter2").
		AddRow(1, "alice", "secret")
	mock.ExpectQuery(`SELECT \* FROM "users" ORDER BY id desc`).
		WillReturnRows(rows)

	users, err := repo.GetUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, uint(2), users[0].ID)
	assert.Equal(t, "alice", users[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}
