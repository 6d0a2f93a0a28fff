package repository

import (
	"errors"

	"github.com/hackateen/mural/internal/apperror"
	"github.com/hackateen/mural/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User

	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}

	return users, nil
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User

	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	return &user, nil
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User

	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("User")
		}
		return nil, err
	}

	return &user, nil
}

// UpdateByID merges the supplied columns into the stored row and returns
// the row as persisted after the write.
func (r *UserRepository) UpdateByID(id uint, updates map[string]interface{}) (*models.User, error) {
	user, err := r.GetByID(id)

	if err != nil {
		return nil, err
	}

	if err := r.db.Model(user).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.First(user, id).Error; err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.User{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.NotFound("User")
	}

	return nil
}
