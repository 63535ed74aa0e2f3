package handlers

import (
	"strconv"

	"recipebook/domain"
	"recipebook/internal/api/presenters"
	"recipebook/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		AddRating(c *fiber.Ctx) error
		GetRecipeRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) AddRating(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRating, domain.ErrInvalidID)
	}

	req := new(domain.AddRatingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRating, err)
	}

	res, err := h.ratingService.AddRating(c.Context(), uint(recipeID), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessAddRating)
}

// GetRecipeRating answers null data when the pair has no rating yet.
func (h *ratingHandler) GetRecipeRating(c *fiber.Ctx) error {
	recipeID, err := c.ParamsInt("id")
	if err != nil || recipeID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRating, domain.ErrInvalidID)
	}

	userID, err := strconv.Atoi(c.Query("user_id", "0"))
	if err != nil || userID < 1 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRating, domain.ErrInvalidID)
	}

	res, err := h.ratingService.GetRecipeRating(c.Context(), uint(recipeID), uint(userID))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRating)
}
