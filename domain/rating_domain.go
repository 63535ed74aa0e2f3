package domain

var (
	MessageSuccessAddRating = "rating saved successfully"
	MessageSuccessGetRating = "success get rating"

	MessageFailedAddRating = "failed to save rating"
	MessageFailedGetRating = "failed to get rating"
)

type (
	AddRatingRequest struct {
		UserID uint `json:"user_id" validate:"required"`
		Score  int  `json:"score" validate:"required,min=1,max=5"`
	}

	RatingResponse struct {
		ID       uint `json:"id"`
		UserID   uint `json:"user_id"`
		RecipeID uint `json:"recipe_id"`
		Score    int  `json:"score"`
	}
)
