package rating

import (
	"context"
	"errors"
	"recipebook/entities"
	"recipebook/internal/database"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		UpsertRating(ctx context.Context, rating *entities.Rating) error
		GetRating(ctx context.Context, recipeID, userID uint) (*entities.Rating, error)
	}

	ratingRepository struct {
		db *gorm.DB
		tx database.TransactionManager
	}
)

func NewRatingRepository(db *gorm.DB, tx database.TransactionManager) RatingRepository {
	return &ratingRepository{db: db, tx: tx}
}

// UpsertRating creates or overwrites the single rating for a (user, recipe)
// pair. The read-then-write runs under repeatable read so the existence check
// stays consistent for the duration of the unit; ratings for different pairs
// never contend.
func (r *ratingRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	return r.tx.RepeatableRead(ctx, func(tx *gorm.DB) error {
		var existing entities.Rating
		err := tx.Where("user_id = ? AND recipe_id = ?", rating.UserID, rating.RecipeID).
			First(&existing).Error
		if err == nil {
			existing.Score = rating.Score
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			*rating = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		return tx.Create(rating).Error
	})
}

// GetRating returns nil without an error when the pair has no rating.
func (r *ratingRepository) GetRating(ctx context.Context, recipeID, userID uint) (*entities.Rating, error) {
	var rating entities.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}
