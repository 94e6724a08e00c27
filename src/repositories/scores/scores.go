package scores

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/okaydivyansh/ecell-quiz/src/core/models"
)

type Repository interface {
	Create(ctx context.Context, score *models.Score) error
	FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Score, error)
	FindAll(ctx context.Context) ([]models.Score, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, score *models.Score) error {
	return r.db.WithContext(ctx).Create(score).Error
}

// FindByUser returns the user's attempts in insertion order.
func (r *repository) FindByUser(ctx context.Context, userID uuid.UUID) ([]models.Score, error) {
	var scores []models.Score
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *repository) FindAll(ctx context.Context) ([]models.Score, error) {
	var scores []models.Score
	if err := r.db.WithContext(ctx).Find(&scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
