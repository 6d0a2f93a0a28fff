package repository

import (
	"errors"

	"github.com/hackateen/mural/internal/apperror"
	"github.com/hackateen/mural/internal/models"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) List() ([]models.Comment, error) {
	var comments []models.Comment

	if err := r.db.Find(&comments).Error; err != nil {
		return nil, err
	}

	return comments, nil
}

func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment

	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("Comment")
		}
		return nil, err
	}

	return &comment, nil
}

func (r *CommentRepository) UpdateByID(id uint, updates map[string]interface{}) (*models.Comment, error) {
	comment, err := r.GetByID(id)

	if err != nil {
		return nil, err
	}

	if err := r.db.Model(comment).Updates(updates).Error; err != nil {
		return nil, err
	}

	if err := r.db.First(comment, id).Error; err != nil {
		return nil, err
	}

	return comment, nil
}

func (r *CommentRepository) DeleteByID(id uint) error {
	result := r.db.Delete(&models.Comment{}, id)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return apperror.NotFound("Comment")
	}

	return nil
}
