package account

import (
	"context"
	"errors"
	"testing"

	"recipebook/domain"
	"recipebook/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAccountRepository struct {
	createUser func(ctx context.Context, user *entities.User) error
	getUsers   func(ctx context.Context) ([]*entities.User, error)
	deleteUser func(ctx context.Context, id uint) error
}

func (f *fakeAccountRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return f.createUser(ctx, user)
}

func (f *fakeAccountRepository) GetUsers(ctx context.Context) ([]*entities.User, error) {
	return f.getUsers(ctx)
}

func (f *fakeAccountRepository) DeleteUser(ctx context.Context, id uint) error {
	return f.deleteUser(ctx, id)
}

func TestAccountService_CreateUser(t *testing.T) {
	repo := &fakeAccountRepository{
		createUser: func(ctx context.Context, user *entities.User) error {
			user.ID = 12
			return nil
		},
	}
	service := NewAccountService(repo, NewSession())

	res, err := service.CreateUser(context.Background(), domain.CreateUserRequest{
		Username: "alice",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(12), res.ID)
	assert.Equal(t, "alice", res.Username)
	assert.Equal(t, "secret", res.Password)
}

func TestAccountService_DeleteUserClearsCurrentPointer(t *testing.T) {
	repo := &fakeAccountRepository{
		deleteUser: func(ctx context.Context, id uint) error { return nil },
	}
	session := NewSession()
	service := NewAccountService(repo, session)

	session.Set(4)

	res, err := service.DeleteUser(context.Background(), 4)

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, uint(4), res.ID)
	assert.Nil(t, session.Get(), "deleting the active user clears the pointer")
}

func TestAccountService_DeleteUserKeepsUnrelatedPointer(t *testing.T) {
	repo := &fakeAccountRepository{
		deleteUser: func(ctx context.Context, id uint) error { return nil },
	}
	session := NewSession()
	service := NewAccountService(repo, session)

	session.Set(9)

	_, err := service.DeleteUser(context.Background(), 4)

	require.NoError(t, err)
	require.NotNil(t, session.Get())
	assert.Equal(t, uint(9), *session.Get())
}

func TestAccountService_DeleteUserNotFound(t *testing.T) {
	repo := &fakeAccountRepository{
		deleteUser: func(ctx context.Context, id uint) error { return gorm.ErrRecordNotFound },
	}
	session := NewSession()
	service := NewAccountService(repo, session)

	session.Set(4)

	_, err := service.DeleteUser(context.Background(), 4)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.NotNil(t, session.Get(), "a failed delete must not touch the pointer")
}

func TestAccountService_DeleteUserStoreFailure(t *testing.T) {
	boom := errors.New("store down")
	repo := &fakeAccountRepository{
		deleteUser: func(ctx context.Context, id uint) error { return boom },
	}
	service := NewAccountService(repo, NewSession())

	_, err := service.DeleteUser(context.Background(), 4)

	assert.ErrorIs(t, err, boom)
}

func TestAccountService_SetAndGetCurrentUser(t *testing.T) {
	service := NewAccountService(&fakeAccountRepository{}, NewSession())

	res := service.SetCurrentUser(domain.SetCurrentUserRequest{UserID: 8})
	require.NotNil(t, res.UserID)
	assert.Equal(t, uint(8), *res.UserID)

	current := service.CurrentUser()
	require.NotNil(t, current.UserID)
	assert.Equal(t, uint(8), *current.UserID)
}

func TestAccountService_GetUsers(t *testing.T) {
	repo := &fakeAccountRepository{
		getUsers: func(ctx context.Context) ([]*entities.User, error) {
			return []*entities.User{
				{ID: 2, Username: "bob", Password: "hunter2"},
				{ID: 1, Username: "alice", Password: "secret"},
			}, nil
		},
	}
	service := NewAccountService(repo, NewSession())

	res, err := service.GetUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, uint(2), res[0].ID)
	assert.Equal(t, "alice", res[1].Username)
}
