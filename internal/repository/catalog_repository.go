package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/models"
)

// GenreRepository reads the fixed genre catalog.
type GenreRepository interface {
	GetAll(ctx context.Context) ([]models.Genre, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

type genreRepository struct {
	db *gorm.DB
}

func NewGenreRepository(db *gorm.DB) GenreRepository {
	return &genreRepository{db: db}
}

func (r *genreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	var list []models.Genre
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}
	return list, nil
}

func (r *genreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Genre{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// PlatformRepository reads the fixed platform catalog.
type PlatformRepository interface {
	GetAll(ctx context.Context) ([]models.Platform, error)
	CountByIDs(ctx context.Context, ids []int64) (int64, error)
}

type platformRepository struct {
	db *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) PlatformRepository {
	return &platformRepository{db: db}
}

func (r *platformRepository) GetAll(ctx context.Context) ([]models.Platform, error) {
	var list []models.Platform
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get platforms: %w", err)
	}
	return list, nil
}

// CountByIDs returns how many of the given ids exist; used to verify a
// submitted platform id set is fully valid.
func (r *platformRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Platform{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
