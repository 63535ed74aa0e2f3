package entities

type User struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Username string `gorm:"not null" json:"username"`
	Password string `gorm:"not null" json:"password"`

	Ratings   []Rating  `gorm:"foreignKey:UserID" json:"ratings,omitempty"`
	Favorites []*Recipe `gorm:"many2many:user_favorites" json:"favorites,omitempty"`
	Timestamp
}
