package recipe

import (
	"context"
	"errors"
	"strings"

	"recipebook/domain"
	"recipebook/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResponse, error)
		GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error)
		GetRecipesFiltered(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.RecipeResponse, error)
		FavoriteRecipe(ctx context.Context, recipeID, userID uint) error
		UnfavoriteRecipe(ctx context.Context, recipeID, userID uint) error
		GetFavoriteRecipeIDs(ctx context.Context, userID uint) ([]uint, error)
		GetRecipesFavoritedBy(ctx context.Context, userID uint) ([]domain.RecipeResponse, error)
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		Name:              req.Name,
		Description:       req.Description,
		PrepTime:          req.PrepTime,
		CuisineType:       req.CuisineType,
		RecipeIngredients: toIngredientLinks(req.Ingredients),
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		log.Errorf("create recipe failed: %v", err)
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) (domain.RecipeResponse, error) {
	recipe := &entities.Recipe{
		ID:                id,
		Name:              req.Name,
		Description:       req.Description,
		PrepTime:          req.PrepTime,
		CuisineType:       req.CuisineType,
		RecipeIngredients: toIngredientLinks(req.Ingredients),
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		log.Errorf("update recipe %d failed: %v", id, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}

	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) (domain.DeleteRecipeResponse, error) {
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		log.Errorf("delete recipe %d failed: %v", id, err)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.DeleteRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.DeleteRecipeResponse{}, err
	}
	return domain.DeleteRecipeResponse{Success: true, ID: id}, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		log.Errorf("get recipes failed: %v", err)
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

// GetRecipesFiltered runs the two-phase filtered read: candidate ids from the
// aggregate query first, detail hydration second. An empty candidate set
// short-circuits without the second query.
func (s *recipeService) GetRecipesFiltered(ctx context.Context, req domain.RecipeFilterRequest) ([]domain.RecipeResponse, error) {
	cuisine := strings.TrimSpace(req.CuisineType)
	if strings.EqualFold(cuisine, domain.CuisineAll) {
		cuisine = ""
	}

	ids, err := s.recipeRepository.GetRecipeIDsByFilter(ctx, cuisine, req.MinRating)
	if err != nil {
		log.Errorf("filter recipes failed: %v", err)
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.RecipeResponse{}, nil
	}

	recipes, err := s.recipeRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		log.Errorf("hydrate filtered recipes failed: %v", err)
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) FavoriteRecipe(ctx context.Context, recipeID, userID uint) error {
	if err := s.recipeRepository.FavoriteRecipe(ctx, recipeID, userID); err != nil {
		log.Errorf("favorite recipe %d for user %d failed: %v", recipeID, userID, err)
		return err
	}
	return nil
}

func (s *recipeService) UnfavoriteRecipe(ctx context.Context, recipeID, userID uint) error {
	if err := s.recipeRepository.UnfavoriteRecipe(ctx, recipeID, userID); err != nil {
		log.Errorf("unfavorite recipe %d for user %d failed: %v", recipeID, userID, err)
		return err
	}
	return nil
}

func (s *recipeService) GetFavoriteRecipeIDs(ctx context.Context, userID uint) ([]uint, error) {
	ids, err := s.recipeRepository.GetFavoriteRecipeIDs(ctx, userID)
	if err != nil {
		log.Errorf("get favorites for user %d failed: %v", userID, err)
		return nil, err
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

func (s *recipeService) GetRecipesFavoritedBy(ctx context.Context, userID uint) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipesFavoritedBy(ctx, userID)
	if err != nil {
		log.Errorf("get favorited recipes for user %d failed: %v", userID, err)
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{Name: req.Name}
	if err := s.recipeRepository.CreateIngredient(ctx, ingredient); err != nil {
		log.Errorf("create ingredient failed: %v", err)
		return domain.IngredientResponse{}, err
	}
	return domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}, nil
}

func (s *recipeService) GetIngredients(ctx context.Context) ([]domain.IngredientResponse, error) {
	ingredients, err := s.recipeRepository.GetIngredients(ctx)
	if err != nil {
		log.Errorf("get ingredients failed: %v", err)
		return nil, err
	}

	res := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		res = append(res, domain.IngredientResponse{ID: ingredient.ID, Name: ingredient.Name})
	}
	return res, nil
}

func toIngredientLinks(ingredients []domain.RecipeIngredientRequest) []entities.RecipeIngredient {
	links := make([]entities.RecipeIngredient, 0, len(ingredients))
	for _, ingredient := range ingredients {
		links = append(links, entities.RecipeIngredient{
			IngredientID: ingredient.IngredientID,
			Quantity:     ingredient.Quantity,
			Unit:         ingredient.Unit,
		})
	}
	return links
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.RecipeIngredients))
	for _, link := range recipe.RecipeIngredients {
		res := domain.RecipeIngredientResponse{
			ID:           link.ID,
			IngredientID: link.IngredientID,
			Quantity:     link.Quantity,
			Unit:         link.Unit,
		}
		if link.Ingredient != nil {
			res.Name = link.Ingredient.Name
		}
		ingredients = append(ingredients, res)
	}

	scores := make([]int, 0, len(recipe.Ratings))
	for _, rating := range recipe.Ratings {
		scores = append(scores, rating.Score)
	}

	return domain.RecipeResponse{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Description: recipe.Description,
		PrepTime:    recipe.PrepTime,
		CuisineType: recipe.CuisineType,
		Ingredients: ingredients,
		Ratings:     scores,
	}
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	res := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		res = append(res, toRecipeResponse(recipe))
	}
	return res
}
