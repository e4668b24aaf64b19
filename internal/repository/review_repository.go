package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/models"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	ListByGame(ctx context.Context, gameID int64) ([]models.ReviewRow, error)
	Exists(ctx context.Context, userID, gameID int64) (bool, error)
	CountByGame(ctx context.Context, gameID int64) (int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review: %w", err)
	}
	return nil
}

func (r *reviewRepository) ListByGame(ctx context.Context, gameID int64) ([]models.ReviewRow, error) {
	var rows []models.ReviewRow
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Select("game_reviews.*, users.name AS reviewer_name").
		Joins("JOIN users ON users.id = game_reviews.user_id").
		Where("game_reviews.game_id = ?", gameID).
		Order("game_reviews.created_at DESC, game_reviews.id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return rows, nil
}

func (r *reviewRepository) Exists(ctx context.Context, userID, gameID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *reviewRepository) CountByGame(ctx context.Context, gameID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Review{}).
		Where("game_id = ?", gameID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
