package repository

import (
	"errors"

	"github.com/hackateen/mural/internal/apperror"
	"github.com/hackateen/mural/internal/models"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostRepository) List() ([]models.Post, error) {
	var posts []models.Post

	if err := r.db.Find(&posts).Error; err != nil {
		return nil, err
	}

	return posts, nil
}

func (r *PostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post

	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Post")
		}
		return nil, err
	}

	return &post, nil
}

func (r *PostRepository) UpdateByID(id uint, updates map[string]interface{}) (*models.Post, error) {
	post, err := r.GetByID(id)

	if err != nil {
		return nil, err
	}

	if err := r.db.Model(post).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.First(post, id).Error; err != nil {
		return nil, err
	}

	return post, nil
}

func (r *PostRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Post{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.NotFound("Post")
	}

	return nil
}
