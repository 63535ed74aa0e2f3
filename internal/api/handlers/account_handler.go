package handlers

import (
	"recipebook/domain"
	"recipebook/internal/api/presenters"
	"recipebook/pkg/account"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AccountHandler interface {
		CreateUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		SetCurrentUser(c *fiber.Ctx) error
		GetCurrentUser(c *fiber.Ctx) error
	}

	accountHandler struct {
		accountService account.AccountService
		validator      *validator.Validate
	}
)

func NewAccountHandler(accountService account.AccountService, validator *validator.Validate) AccountHandler {
	return &accountHandler{
		accountService: accountService,
		validator:      validator,
	}
}

func (h *accountHandler) CreateUser(c *fiber.Ctx) error {
	req := new(domain.CreateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUser, err)
	}

	res, err := h.accountService.CreateUser(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateUser)
}

func (h *accountHandler) GetUsers(c *fiber.Ctx) error {
	res, err := h.accountService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *accountHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, domain.ErrInvalidID)
	}

	res, err := h.accountService.DeleteUser(c.Context(), uint(id))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}

func (h *accountHandler) SetCurrentUser(c *fiber.Ctx) error {
	req := new(domain.SetCurrentUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
	}

	res := h.accountService.SetCurrentUser(*req)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSetCurrentUser)
}

func (h *accountHandler) GetCurrentUser(c *fiber.Ctx) error {
	res := h.accountService.CurrentUser()
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCurrentUser)
}
