package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/models"
)

// LibraryRepository manages the per-user wishlist and owned relations.
type LibraryRepository interface {
	AddWishlist(ctx context.Context, userID, gameID int64) error
	RemoveWishlist(ctx context.Context, userID, gameID int64) (bool, error)
	WishlistExists(ctx context.Context, userID, gameID int64) (bool, error)
	CountWishlists(ctx context.Context, gameID int64) (int64, error)

	AddOwned(ctx context.Context, userID, gameID int64) error
	RemoveOwned(ctx context.Context, userID, gameID int64) (bool, error)
	OwnedExists(ctx context.Context, userID, gameID int64) (bool, error)
	CountOwners(ctx context.Context, gameID int64) (int64, error)
}

type libraryRepository struct {
	db *gorm.DB
}

func NewLibraryRepository(db *gorm.DB) LibraryRepository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) AddWishlist(ctx context.Context, userID, gameID int64) error {
	entry := &models.WishlistEntry{UserID: userID, GameID: gameID}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("add to wishlist: %w", err)
	}
	return nil
}

// RemoveWishlist deletes the pair row and reports whether one existed.
func (r *libraryRepository) RemoveWishlist(ctx context.Context, userID, gameID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.WishlistEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("remove from wishlist: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *libraryRepository) WishlistExists(ctx context.Context, userID, gameID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WishlistEntry{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *libraryRepository) CountWishlists(ctx context.Context, gameID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.WishlistEntry{}).
		Where("game_id = ?", gameID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AddOwned inserts the owned row and evicts any wishlist row for the pair,
// atomically.
func (r *libraryRepository) AddOwned(ctx context.Context, userID, gameID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND game_id = ?", userID, gameID).
			Delete(&models.WishlistEntry{}).Error; err != nil {
			return err
		}
		return tx.Create(&models.OwnedEntry{UserID: userID, GameID: gameID}).Error
	})
	if err != nil {
		return fmt.Errorf("mark owned: %w", err)
	}
	return nil
}

func (r *libraryRepository) RemoveOwned(ctx context.Context, userID, gameID int64) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.OwnedEntry{})
	if result.Error != nil {
		return false, fmt.Errorf("unmark owned: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *libraryRepository) OwnedExists(ctx context.Context, userID, gameID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OwnedEntry{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *libraryRepository) CountOwners(ctx context.Context, gameID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.OwnedEntry{}).
		Where("game_id = ?", gameID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
