package account

import (
	"context"
	"errors"
	"recipebook/domain"
	"recipebook/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	AccountService interface {
		CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, id uint) (domain.DeleteUserResponse, error)
		SetCurrentUser(req domain.SetCurrentUserRequest) domain.CurrentUserResponse
		CurrentUser() domain.CurrentUserResponse
	}

	accountService struct {
		accountRepository AccountRepository
		session           *Session
	}
)

func NewAccountService(accountRepository AccountRepository, session *Session) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		session:           session,
	}
}

func (s *accountService) CreateUser(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	user := &entities.User{
		Username: req.Username,
		Password: req.Password,
	}

	if err := s.accountRepository.CreateUser(ctx, user); err != nil {
		log.Errorf("create user failed: %v", err)
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *accountService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.accountRepository.GetUsers(ctx)
	if err != nil {
		log.Errorf("get users failed: %v", err)
		return nil, err
	}

	res := make([]domain.UserResponse, 0, len(users))
	for _, user := range users {
		res = append(res, toUserResponse(user))
	}
	return res, nil
}

func (s *accountService) DeleteUser(ctx context.Context, id uint) (domain.DeleteUserResponse, error) {
	if err := s.accountRepository.DeleteUser(ctx, id); err != nil {
		log.Errorf("delete user %d failed: %v", id, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteUserResponse{}, domain.ErrUserNotFound
		}
		return domain.DeleteUserResponse{}, err
	}

	// The deleted user may be the process-wide active one.
	s.session.ClearIf(id)

	return domain.DeleteUserResponse{Success: true, ID: id}, nil
}

func (s *accountService) SetCurrentUser(req domain.SetCurrentUserRequest) domain.CurrentUserResponse {
	s.session.Set(req.UserID)
	return domain.CurrentUserResponse{UserID: s.session.Get()}
}

func (s *accountService) CurrentUser() domain.CurrentUserResponse {
	return domain.CurrentUserResponse{UserID: s.session.Get()}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Password: user.Password,
	}
}
