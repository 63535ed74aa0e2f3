package entities

type Recipe struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description,omitempty"`
	PrepTime    int     `json:"prep_time"`
	CuisineType *string `json:"cuisine_type,omitempty"`

	RecipeIngredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"recipe_ingredients,omitempty"`
	Ratings           []Rating           `gorm:"foreignKey:RecipeID" json:"ratings,omitempty"`
	FavoritedBy       []*User            `gorm:"many2many:user_favorites" json:"favorited_by,omitempty"`
	Timestamp
}

type Ingredient struct {
	ID   uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Timestamp
}

// RecipeIngredient rows are owned by their Recipe: the update path wipes and
// recreates the full set for a recipe id, so an ingredient appears at most
// once per recipe.
type RecipeIngredient struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID     uint    `gorm:"not null;index" json:"recipe_id"`
	IngredientID uint    `gorm:"not null" json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`

	Ingredient *Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}
