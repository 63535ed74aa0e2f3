package account

import (
	"context"
	"fmt"
	"testing"

	"recipebook/entities"
	"recipebook/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&entities.User{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.RecipeIngredient{},
		&entities.Rating{},
	))
	return db
}

func TestAccountRepository_DeleteUserCascade(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))
	ctx := context.Background()

	user := entities.User{Username: "alice", Password: "secret"}
	require.NoError(t, db.Create(&user).Error)
	other := entities.User{Username: "bob", Password: "hunter2"}
	require.NoError(t, db.Create(&other).Error)

	recipe := entities.Recipe{Name: "toast", PrepTime: 5}
	require.NoError(t, db.Create(&recipe).Error)

	ratings := []entities.Rating{
		{UserID: user.ID, RecipeID: recipe.ID, Score: 4},
		{UserID: other.ID, RecipeID: recipe.ID, Score: 2},
	}
	require.NoError(t, db.Create(&ratings).Error)
	require.NoError(t, db.Model(&user).Association("Favorites").Append(&recipe))

	require.NoError(t, repo.DeleteUser(ctx, user.ID))

	var userCount int64
	require.NoError(t, db.Model(&entities.User{}).Where("id = ?", user.ID).Count(&userCount).Error)
	assert.Zero(t, userCount)

	var ratingCount int64
	require.NoError(t, db.Model(&entities.Rating{}).Where("user_id = ?", user.ID).Count(&ratingCount).Error)
	assert.Zero(t, ratingCount, "every rating by the user is gone")

	// Other users' ratings are untouched.
	require.NoError(t, db.Model(&entities.Rating{}).Where("user_id = ?", other.ID).Count(&ratingCount).Error)
	assert.Equal(t, int64(1), ratingCount)

	favoriteCount := db.Model(&entities.User{ID: user.ID}).Association("Favorites").Count()
	assert.Zero(t, favoriteCount, "favorites memberships are gone")
}

func TestAccountRepository_DeleteMissingUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))

	err := repo.DeleteUser(context.Background(), 4242)

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestAccountRepository_CreateAndListUsers(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, database.NewTransactionManager(db))
	ctx := context.Background()

	first := &entities.User{Username: "alice", Password: "secret"}
	require.NoError(t, repo.CreateUser(ctx, first))
	second := &entities.User{Username: "bob", Password: "hunter2"}
	require.NoError(t, repo.CreateUser(ctx, second))

	users, err := repo.GetUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, second.ID, users[0].ID, "newest first")
	assert.Equal(t, "alice", users[1].Username)
}
