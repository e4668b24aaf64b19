package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
	"github.com/max-shi/game-api-server/internal/repository"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrTitleInUse       = errors.New("game title already in use")
	ErrGenreNotFound    = errors.New("genre does not exist")
	ErrInvalidPlatforms = errors.New("one or more platform ids do not exist")
	ErrNotCreator       = errors.New("only the creator may modify this game")
	ErrGameHasReviews   = errors.New("cannot delete a game with reviews")
)

type GameService interface {
	Search(ctx context.Context, filters dto.GameSearchFilters) (*dto.SearchGamesResponse, error)
	GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error)
	Create(ctx context.Context, creatorID int64, in dto.CreateGameDTO) (*models.Game, error)
	Update(ctx context.Context, requesterID, gameID int64, in dto.UpdateGameDTO) error
	Delete(ctx context.Context, requesterID, gameID int64) error
	Genres(ctx context.Context) ([]models.Genre, error)
	Platforms(ctx context.Context) ([]models.Platform, error)
}

type gameService struct {
	gameRepo     repository.GameRepository
	genreRepo    repository.GenreRepository
	platformRepo repository.PlatformRepository
	reviewRepo   repository.ReviewRepository
	libraryRepo  repository.LibraryRepository
}

func NewGameService(
	gameRepo repository.GameRepository,
	genreRepo repository.GenreRepository,
	platformRepo repository.PlatformRepository,
	reviewRepo repository.ReviewRepository,
	libraryRepo repository.LibraryRepository,
) GameService {
	return &gameService{
		gameRepo:     gameRepo,
		genreRepo:    genreRepo,
		platformRepo: platformRepo,
		reviewRepo:   reviewRepo,
		libraryRepo:  libraryRepo,
	}
}

// Search runs the dynamic listing query. Zero matches is a valid empty page,
// not an error.
func (s *gameService) Search(ctx context.Context, filters dto.GameSearchFilters) (*dto.SearchGamesResponse, error) {
	listings, total, err := s.gameRepo.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	games := make([]dto.GameSummaryResponse, 0, len(listings))
	for _, l := range listings {
		games = append(games, dto.FromListingToSummary(l))
	}
	return &dto.SearchGamesResponse{Games: games, Count: total}, nil
}

func (s *gameService) GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error) {
	listing, err := s.gameRepo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	wishlists, err := s.libraryRepo.CountWishlists(ctx, id)
	if err != nil {
		return nil, err
	}
	owners, err := s.libraryRepo.CountOwners(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.GameDetailResponse{
		GameSummaryResponse: dto.FromListingToSummary(*listing),
		Description:         listing.Description,
		NumberOfWishlists:   wishlists,
		NumberOfOwners:      owners,
	}, nil
}

// Create validates the genre and platform id set, then inserts the game row
// and its platform joins.
func (s *gameService) Create(ctx context.Context, creatorID int64, in dto.CreateGameDTO) (*models.Game, error) {
	if err := s.validateCatalogRefs(ctx, &in.GenreID, in.PlatformIDs); err != nil {
		return nil, err
	}

	taken, err := s.gameRepo.ExistsByTitle(ctx, in.Title, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrTitleInUse
	}

	game := &models.Game{
		Title:       in.Title,
		Description: in.Description,
		CreatorID:   creatorID,
		GenreID:     in.GenreID,
		Price:       *in.Price,
	}
	if err := s.gameRepo.Create(ctx, game, in.PlatformIDs); err != nil {
		return nil, err
	}
	return game, nil
}

// Update lets only the creator modify the game; genre and platforms are
// re-validated when supplied, and a supplied platform set fully replaces the
// existing associations.
func (s *gameService) Update(ctx context.Context, requesterID, gameID int64, in dto.UpdateGameDTO) error {
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

	if err := s.validateCatalogRefs(ctx, in.GenreID, in.PlatformIDs); err != nil {
		return err
	}

	if in.Title != nil && *in.Title != game.Title {
		taken, err := s.gameRepo.ExistsByTitle(ctx, *in.Title, gameID)
		if err != nil {
			return err
		}
		if taken {
			return ErrTitleInUse
		}
		game.Title = *in.Title
	}
	if in.Description != nil {
		game.Description = *in.Description
	}
	if in.GenreID != nil {
		game.GenreID = *in.GenreID
	}
	if in.Price != nil {
		game.Price = *in.Price
	}

	if err := s.gameRepo.Update(ctx, game); err != nil {
		return err
	}

	if in.PlatformIDs != nil {
		if err := s.gameRepo.ReplacePlatforms(ctx, gameID, in.PlatformIDs); err != nil {
			return err
		}
	}
	return nil
}

// Delete refuses when any review exists, then cascades the delete.
func (s *gameService) Delete(ctx context.Context, requesterID, gameID int64) error {
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

	reviews, err := s.reviewRepo.CountByGame(ctx, gameID)
	if err != nil {
		return err
	}
	if reviews > 0 {
		return ErrGameHasReviews
	}

	return s.gameRepo.Delete(ctx, gameID)
}

func (s *gameService) Genres(ctx context.Context) ([]models.Genre, error) {
	return s.genreRepo.GetAll(ctx)
}

func (s *gameService) Platforms(ctx context.Context) ([]models.Platform, error) {
	return s.platformRepo.GetAll(ctx)
}

// validateCatalogRefs checks an optional genre id and an optional platform id
// set against the catalog tables.
func (s *gameService) validateCatalogRefs(ctx context.Context, genreID *int64, platformIDs []int64) error {
	if genreID != nil {
		exists, err := s.genreRepo.Exists(ctx, *genreID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrGenreNotFound
		}
	}
	if platformIDs != nil {
		count, err := s.platformRepo.CountByIDs(ctx, platformIDs)
		if err != nil {
			return err
		}
		if count != int64(len(platformIDs)) {
			return ErrInvalidPlatforms
		}
	}
	return nil
}
