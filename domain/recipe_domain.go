package domain

import "errors"

var (
	MessageSuccessGetRecipes       = "success get recipes"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessUpdateRecipe     = "recipe updated successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessFavoriteRecipe   = "recipe favorited successfully"
	MessageSuccessUnfavoriteRecipe = "recipe unfavorited successfully"
	MessageSuccessGetFavorites     = "success get favorites"
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredients   = "success get ingredients"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedUpdateRecipe     = "failed to update recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedFavoriteRecipe   = "failed to favorite recipe"
	MessageFailedUnfavoriteRecipe = "failed to unfavorite recipe"
	MessageFailedGetFavorites     = "failed to get favorites"
	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredients   = "failed to get ingredients"

	ErrRecipeNotFound = errors.New("recipe not found")
)

// CuisineAll disables the cuisine filter in filtered recipe queries.
const CuisineAll = "all"

type (
	RecipeIngredientRequest struct {
		IngredientID uint    `json:"ingredient_id" validate:"required"`
		Quantity     float64 `json:"quantity" validate:"required"`
		Unit         string  `json:"unit" validate:"required"`
	}

	CreateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Description *string                   `json:"description,omitempty"`
		PrepTime    int                       `json:"prep_time" validate:"gte=0"`
		CuisineType *string                   `json:"cuisine_type,omitempty"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	UpdateRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Description *string                   `json:"description,omitempty"`
		PrepTime    int                       `json:"prep_time" validate:"gte=0"`
		CuisineType *string                   `json:"cuisine_type,omitempty"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	RecipeFilterRequest struct {
		CuisineType string  `json:"cuisine_type"`
		MinRating   float64 `json:"min_rating" validate:"gte=0"`
	}

	RecipeIngredientResponse struct {
		ID           uint    `json:"id"`
		IngredientID uint    `json:"ingredient_id"`
		Name         string  `json:"name"`
		Quantity     float64 `json:"quantity"`
		Unit         string  `json:"unit"`
	}

	RecipeResponse struct {
		ID          uint                       `json:"id"`
		Name        string                     `json:"name"`
		Description *string                    `json:"description,omitempty"`
		PrepTime    int                        `json:"prep_time"`
		CuisineType *string                    `json:"cuisine_type,omitempty"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		Ratings     []int                      `json:"ratings"`
	}

	DeleteRecipeResponse struct {
		Success bool `json:"success"`
		ID      uint `json:"id"`
	}

	FavoriteRecipeRequest struct {
		UserID uint `json:"user_id" validate:"required"`
	}

	CreateIngredientRequest struct {
		Name string `json:"name" validate:"required,min=1"`
	}

	IngredientResponse struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
)
