package rating

import (
	"context"
	"recipebook/domain"
	"recipebook/entities"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RatingService interface {
		AddRating(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error)
		GetRecipeRating(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

func (s *ratingService) AddRating(ctx context.Context, recipeID uint, req domain.AddRatingRequest) (domain.RatingResponse, error) {
	rating := &entities.Rating{
		UserID:   req.UserID,
		RecipeID: recipeID,
		Score:    req.Score,
	}

	if err := s.ratingRepository.UpsertRating(ctx, rating); err != nil {
		log.Errorf("save rating for recipe %d user %d failed: %v", recipeID, req.UserID, err)
		return domain.RatingResponse{}, err
	}

	return toRatingResponse(rating), nil
}

// GetRecipeRating returns nil data for an unrated pair; absence is a normal
// outcome, not an error.
func (s *ratingService) GetRecipeRating(ctx context.Context, recipeID, userID uint) (*domain.RatingResponse, error) {
	rating, err := s.ratingRepository.GetRating(ctx, recipeID, userID)
	if err != nil {
		log.Errorf("get rating for recipe %d user %d failed: %v", recipeID, userID, err)
		return nil, err
	}
	if rating == nil {
		return nil, nil
	}

	res := toRatingResponse(rating)
	return &res, nil
}

func toRatingResponse(rating *entities.Rating) domain.RatingResponse {
	return domain.RatingResponse{
		ID:       rating.ID,
		UserID:   rating.UserID,
		RecipeID: rating.RecipeID,
		Score:    rating.Score,
	}
}
