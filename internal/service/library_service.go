package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/repository"
)

var (
	ErrOwnGameAction     = errors.New("cannot wishlist or own your own game")
	ErrAlreadyWishlisted = errors.New("game already wishlisted")
	ErrAlreadyOwned      = errors.New("game already marked as owned")
	ErrNotWishlisted     = errors.New("game is not in the wishlist")
	ErrNotOwned          = errors.New("game is not marked as owned")
)

// LibraryService implements the per-user wishlist/owned state transitions.
type LibraryService interface {
	AddWishlist(ctx context.Context, userID, gameID int64) error
	RemoveWishlist(ctx context.Context, userID, gameID int64) error
	AddOwned(ctx context.Context, userID, gameID int64) error
	RemoveOwned(ctx context.Context, userID, gameID int64) error
}

type libraryService struct {
	libraryRepo repository.LibraryRepository
	gameRepo    repository.GameRepository
}

func NewLibraryService(libraryRepo repository.LibraryRepository, gameRepo repository.GameRepository) LibraryService {
	return &libraryService{libraryRepo: libraryRepo, gameRepo: gameRepo}
}

// requireForeignGame loads the game and rejects the creator acting on it.
func (s *libraryService) requireForeignGame(ctx context.Context, userID, gameID int64) error {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	if game.CreatorID == userID {
		return ErrOwnGameAction
	}
	return nil
}

// AddWishlist rejects the creator, owned games and duplicate entries.
func (s *libraryService) AddWishlist(ctx context.Context, userID, gameID int64) error {
	if err := s.requireForeignGame(ctx, userID, gameID); err != nil {
		return err
	}

	owned, err := s.libraryRepo.OwnedExists(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if owned {
		return ErrAlreadyOwned
	}

	wishlisted, err := s.libraryRepo.WishlistExists(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if wishlisted {
		return ErrAlreadyWishlisted
	}

	return s.libraryRepo.AddWishlist(ctx, userID, gameID)
}

func (s *libraryService) RemoveWishlist(ctx context.Context, userID, gameID int64) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	removed, err := s.libraryRepo.RemoveWishlist(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotWishlisted
	}
	return nil
}

// AddOwned rejects the creator and duplicates; any wishlist entry for the
// pair is removed as part of the same operation.
func (s *libraryService) AddOwned(ctx context.Context, userID, gameID int64) error {
	if err := s.requireForeignGame(ctx, userID, gameID); err != nil {
		return err
	}

	owned, err := s.libraryRepo.OwnedExists(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if owned {
		return ErrAlreadyOwned
	}

	return s.libraryRepo.AddOwned(ctx, userID, gameID)
}

func (s *libraryService) RemoveOwned(ctx context.Context, userID, gameID int64) error {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	removed, err := s.libraryRepo.RemoveOwned(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrNotOwned
	}
	return nil
}
