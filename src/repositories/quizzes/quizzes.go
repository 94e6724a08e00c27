package quizzes

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okaydivyansh/ecell-quiz/src/core/models"
)

type Repository interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	FindAll(ctx context.Context) ([]models.Quiz, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Quiz, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, quiz *models.Quiz) error {
	return r.db.WithContext(ctx).Create(quiz).Error
}

func (r *repository) FindAll(ctx context.Context) ([]models.Quiz, error) {
	var quizzes []models.Quiz
	if err := r.db.WithContext(ctx).Order("created_at").Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Quiz, error) {
	var quiz models.Quiz
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &quiz, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Quiz, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var quizzes []models.Quiz
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&quizzes).Error; err != nil {
		return nil, err
	}
	return quizzes, nil
}
