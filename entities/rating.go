package entities

type Rating struct {
	ID       uint `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"user_id"`
	RecipeID uint `gorm:"not null;uniqueIndex:idx_user_recipe" json:"recipe_id"`
	Score    int  `gorm:"not null" json:"score"`

	User   *User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
