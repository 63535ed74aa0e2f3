package recipe

import (
	"context"
	"recipebook/entities"
	"recipebook/internal/database"

	"gorm.io/gorm"
)

// filterIDsQuery resolves the candidate recipe ids for a filtered listing.
// The aggregation runs in the store: recipes with no ratings average to 0
// via COALESCE, and the cuisine match is case-insensitive. An empty cuisine
// argument disables the cuisine condition.
const filterIDsQuery = `
SELECT recipes.id
FROM recipes
LEFT JOIN ratings ON ratings.recipe_id = recipes.id
WHERE (? = '' OR LOWER(recipes.cuisine_type) = LOWER(?))
GROUP BY recipes.id
HAVING COALESCE(AVG(ratings.score), 0) >= ?
ORDER BY recipes.id DESC`

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id uint) error
		GetRecipes(ctx context.Context) ([]*entities.Recipe, error)
		GetRecipeIDsByFilter(ctx context.Context, cuisineType string, minRating float64) ([]uint, error)
		GetRecipesByIDs(ctx context.Context, ids []uint) ([]*entities.Recipe, error)
		FavoriteRecipe(ctx context.Context, recipeID, userID uint) error
		UnfavoriteRecipe(ctx context.Context, recipeID, userID uint) error
		GetFavoriteRecipeIDs(ctx context.Context, userID uint) ([]uint, error)
		GetRecipesFavoritedBy(ctx context.Context, userID uint) ([]*entities.Recipe, error)
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredients(ctx context.Context) ([]*entities.Ingredient, error)
	}

	recipeRepository struct {
		db *gorm.DB
		tx database.TransactionManager
	}
)

func NewRecipeRepository(db *gorm.DB, tx database.TransactionManager) RecipeRepository {
	return &recipeRepository{db: db, tx: tx}
}

// CreateRecipe persists the recipe row together with every ingredient link;
// either the full set becomes visible or nothing does.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		return tx.Create(recipe).Error
	})
}

// UpdateRecipe replaces the scalar fields and the whole ingredient link set.
// The links are wiped and recreated rather than merged, inside the same unit
// as the field update.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipe.ID).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}

		result := tx.Model(&entities.Recipe{}).
			Where("id = ?", recipe.ID).
			Updates(map[string]interface{}{
				"name":         recipe.Name,
				"description":  recipe.Description,
				"prep_time":    recipe.PrepTime,
				"cuisine_type": recipe.CuisineType,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if len(recipe.RecipeIngredients) == 0 {
			return nil
		}
		for i := range recipe.RecipeIngredients {
			recipe.RecipeIngredients[i].RecipeID = recipe.ID
		}
		return tx.Create(&recipe.RecipeIngredients).Error
	})
}

// DeleteRecipe removes ingredient links, ratings and favorites memberships
// before the recipe row itself, leaving no dangling references.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).
			Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).
			Delete(&entities.Rating{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.Recipe{ID: id}).
			Association("FavoritedBy").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&entities.Recipe{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipes(ctx context.Context) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeIngredients.Ingredient").
		Preload("Ratings").
		Order("id desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) GetRecipeIDsByFilter(ctx context.Context, cuisineType string, minRating float64) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Raw(filterIDsQuery, cuisineType, cuisineType, minRating).
		Scan(&ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) GetRecipesByIDs(ctx context.Context, ids []uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeIngredients.Ingredient").
		Preload("Ratings").
		Where("id IN ?", ids).
		Order("id desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// FavoriteRecipe connects the pair in the favorites relation. Both rows must
// already exist; a bare Append would upsert a blank user row for an unknown
// id. Appending an already-favorited pair is a no-op, not an error.
func (r *recipeRepository) FavoriteRecipe(ctx context.Context, recipeID, userID uint) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&entities.Recipe{}).Where("id = ?", recipeID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Model(&entities.Recipe{ID: recipeID}).
			Association("FavoritedBy").
			Append(&entities.User{ID: userID})
	})
}

// UnfavoriteRecipe disconnects the pair; removing an absent membership is a
// no-op as well.
func (r *recipeRepository) UnfavoriteRecipe(ctx context.Context, recipeID, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recipe{ID: recipeID}).
		Association("FavoritedBy").
		Delete(&entities.User{ID: userID})
}

func (r *recipeRepository) GetFavoriteRecipeIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN user_favorites ON user_favorites.recipe_id = recipes.id").
		Where("user_favorites.user_id = ?", userID).
		Order("recipes.id desc").
		Pluck("recipes.id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *recipeRepository) GetRecipesFavoritedBy(ctx context.Context, userID uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("RecipeIngredients.Ingredient").
		Preload("Ratings").
		Joins("JOIN user_favorites ON user_favorites.recipe_id = recipes.id").
		Where("user_favorites.user_id = ?", userID).
		Order("recipes.id desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *recipeRepository) GetIngredients(ctx context.Context) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Order("id asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
