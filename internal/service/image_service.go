package service

import (
	"context"
	"errors"
	"io/fs"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/repository"
	"github.com/max-shi/game-api-server/internal/storage"
)

var ErrNoImage = errors.New("no image set")

// readImage treats a filename whose backing file has gone missing the same
// as no image at all, so the file/row pairing stays observable as 404.
func readImage(store *storage.ImageStore, filename string) ([]byte, string, error) {
	data, contentType, err := store.Read(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrNoImage
		}
		return nil, "", err
	}
	return data, contentType, nil
}

// ImageService ties each stored image file 1:1 to the filename column of
// its owning row.
type ImageService interface {
	GetUserImage(ctx context.Context, userID int64) ([]byte, string, error)
	SetUserImage(ctx context.Context, userID int64, contentType string, data []byte) (created bool, err error)
	DeleteUserImage(ctx context.Context, userID int64) error

	GetGameImage(ctx context.Context, gameID int64) ([]byte, string, error)
	SetGameImage(ctx context.Context, requesterID, gameID int64, contentType string, data []byte) (created bool, err error)
	DeleteGameImage(ctx context.Context, requesterID, gameID int64) error
}

type imageService struct {
	userRepo   repository.UserRepository
	gameRepo   repository.GameRepository
	userImages *storage.ImageStore
	gameImages *storage.ImageStore
}

func NewImageService(
	userRepo repository.UserRepository,
	gameRepo repository.GameRepository,
	userImages *storage.ImageStore,
	gameImages *storage.ImageStore,
) ImageService {
	return &imageService{
		userRepo:   userRepo,
		gameRepo:   gameRepo,
		userImages: userImages,
		gameImages: gameImages,
	}
}

func (s *imageService) GetUserImage(ctx context.Context, userID int64) ([]byte, string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if user.ImageFilename == nil {
		return nil, "", ErrNoImage
	}
	return readImage(s.userImages, *user.ImageFilename)
}

func (s *imageService) SetUserImage(ctx context.Context, userID int64, contentType string, data []byte) (bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}

	created := user.ImageFilename == nil
	filename, err := s.userImages.Save(userID, contentType, data, user.ImageFilename)
	if err != nil {
		return false, err
	}

	user.ImageFilename = &filename
	if err := s.userRepo.Update(ctx, user); err != nil {
		return false, err
	}
	return created, nil
}

func (s *imageService) DeleteUserImage(ctx context.Context, userID int64) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if user.ImageFilename == nil {
		return ErrNoImage
	}

	if err := s.userImages.Remove(*user.ImageFilename); err != nil {
		return err
	}
	user.ImageFilename = nil
	return s.userRepo.Update(ctx, user)
}

func (s *imageService) GetGameImage(ctx context.Context, gameID int64) ([]byte, string, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrGameNotFound
		}
		return nil, "", err
	}
	if game.ImageFilename == nil {
		return nil, "", ErrNoImage
	}
	return readImage(s.gameImages, *game.ImageFilename)
}

// SetGameImage is restricted to the game's creator.
func (s *imageService) SetGameImage(ctx context.Context, requesterID, gameID int64, contentType string, data []byte) (bool, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrGameNotFound
		}
		return false, err
	}
	if game.CreatorID != requesterID {
		return false, ErrNotCreator
	}

	created := game.ImageFilename == nil
	filename, err := s.gameImages.Save(gameID, contentType, data, game.ImageFilename)
	if err != nil {
		return false, err
	}

	game.ImageFilename = &filename
	if err := s.gameRepo.Update(ctx, game); err != nil {
		return false, err
	}
	return created, nil
}

func (s *imageService) DeleteGameImage(ctx context.Context, requesterID, gameID int64) error {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrGameNotFound
		}
		return err
	}
	if game.CreatorID != requesterID {
		return ErrNotCreator
	}
	if game.ImageFilename == nil {
		return ErrNoImage
	}

	if err := s.gameImages.Remove(*game.ImageFilename); err != nil {
		return err
	}
	game.ImageFilename = nil
	return s.gameRepo.Update(ctx, game)
}
