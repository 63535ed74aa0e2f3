package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"recipebook/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRatingService struct {
	addRating       func(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error)
	getRecipeRating func(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error)
}

func (f *fakeRatingService) AddRating(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error) {
	return f.addRating(ctx, recipeID, req)
}

func (f *fakeRatingService) GetRecipeRating(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error) {
	return f.getRecipeRating(ctx, recipeID, userID)
}

func setupRatingApp(service *fakeRatingService) *fiber.App {
	app := fiber.New()
	handler := NewRatingHandler(service, validator.New())
	app.Post("/recipes/:id/ratings", handler.AddRating)
	app.Get("/recipes/:id/ratings", handler.GetRecipeRating)
	return app
}

func TestRatingHandler_AddRating(t *testing.T) {
	service := &fakeRatingService{
		addRating: func(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error) {
			return domain.RatingResponse{ID: 1, UserID: req.UserID, RecipeID: recipeID, Score: req.Score}, nil
		},
	}
	app := setupRatingApp(service)

	req := httptest.NewRequest(fiber.MethodPost, "/recipes/3/ratings", strings.NewReader(`{"user_id":2,"score":4}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRatingHandler_AddRatingRejectsOutOfRangeScore(t *testing.T) {
	called := false
	service := &fakeRatingService{
		addRating: func(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error) {
			called = true
			return domain.RatingResponse{}, nil
		},
	}
	app := setupRatingApp(service)

	for _, body := range []string{
		`{"user_id":2,"score":0}`,
		`{"user_id":2,"score":6}`,
		`{"score":4}`,
	} {
		req := httptest.NewRequest(fiber.MethodPost, "/recipes/3/ratings", strings.NewReader(body))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, body)
	}

	assert.False(t, called, "invalid input never reaches the service")
}

func TestRatingHandler_GetRecipeRatingAbsent(t *testing.T) {
	service := &fakeRatingService{
		getRecipeRating: func(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error) {
			return nil, nil
		},
	}
	app := setupRatingApp(service)

	req := httptest.NewRequest(fiber.MethodGet, "/recipes/3/ratings?user_id=2", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var envelope struct {
		Status bool            `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Status)
	assert.True(t, len(envelope.Data) == 0 || string(envelope.Data) == "null")
}

func TestRatingHandler_GetRecipeRatingRequiresUserID(t *testing.T) {
	service := &fakeRatingService{
		getRecipeRating: func(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error) {
			t.Fatal("service must not be called without user_id")
			return nil, nil
		},
	}
	app := setupRatingApp(service)

	req := httptest.NewRequest(fiber.MethodGet, "/recipes/3/ratings", nil)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
