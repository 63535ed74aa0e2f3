package account

import (
	"context"
	"recipebook/entities"
	"recipebook/internal/database"

	"gorm.io/gorm"
)

type (
	AccountRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUsers(ctx context.Context) ([]*entities.User, error)
		DeleteUser(ctx context.Context, id uint) error
	}

	accountRepository struct {
		db *gorm.DB
		tx database.TransactionManager
	}
)

func NewAccountRepository(db *gorm.DB, tx database.TransactionManager) AccountRepository {
	return &accountRepository{db: db, tx: tx}
}

func (r *accountRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (r *accountRepository) GetUsers(ctx context.Context) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).Order("id desc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user's ratings and favorites memberships before the
// user row itself, all inside one serializable unit.
func (r *accountRepository) DeleteUser(ctx context.Context, id uint) error {
	return r.tx.Serializable(ctx, func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&entities.Rating{}).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.User{ID: id}).Association("Favorites").Clear(); err != nil {
			return err
		}

		result := tx.Delete(&entities.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
