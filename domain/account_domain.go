package domain

import "errors"

var (
	MessageSuccessCreateUser     = "user created successfully"
	MessageSuccessGetUsers       = "success get users"
	MessageSuccessDeleteUser     = "user deleted successfully"
	MessageSuccessSetCurrentUser = "current user set successfully"
	MessageSuccessGetCurrentUser = "success get current user"

	MessageFailedCreateUser = "failed to create user"
	MessageFailedGetUsers   = "failed to get users"
	MessageFailedDeleteUser = "failed to delete user"

	ErrUserNotFound = errors.New("user not found")
)

type (
	CreateUserRequest struct {
		Username string `json:"username" validate:"required,min=1"`
		Password string `json:"password" validate:"required,min=1"`
	}

	UserResponse struct {
		ID       uint   `json:"id"`
		Username string `json:"username"`
		Password string `json:"password"`
	}

	DeleteUserResponse struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}

	SetCurrentUserRequest struct {
		UserID uint `json:"user_id" validate:"required"`
	}

	CurrentUserResponse struct {
		UserID *uint `json:"user_id"`
	}
)
