package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
)

// Shared repository mocks for the game, review and library service tests.

type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) Create(ctx context.Context, game *models.Game, platformIDs []int64) error {
	args := m.Called(ctx, game, platformIDs)
	return args.Error(0)
}

func (m *MockGameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetListing(ctx context.Context, id int64) (*models.GameListing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GameListing), args.Error(1)
}

func (m *MockGameRepository) Search(ctx context.Context, filters dto.GameSearchFilters) ([]models.GameListing, int64, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]models.GameListing), args.Get(1).(int64), args.Error(2)
}

func (m *MockGameRepository) Update(ctx context.Context, game *models.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *MockGameRepository) ReplacePlatforms(ctx context.Context, gameID int64, platformIDs []int64) error {
	args := m.Called(ctx, gameID, platformIDs)
	return args.Error(0)
}

func (m *MockGameRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGameRepository) ExistsByTitle(ctx context.Context, title string, excludeID int64) (bool, error) {
	args := m.Called(ctx, title, excludeID)
	return args.Bool(0), args.Error(1)
}

type MockGenreRepository struct {
	mock.Mock
}

func (m *MockGenreRepository) GetAll(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGenreRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockPlatformRepository struct {
	mock.Mock
}

func (m *MockPlatformRepository) GetAll(ctx context.Context) ([]models.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Platform), args.Error(1)
}

func (m *MockPlatformRepository) CountByIDs(ctx context.Context, ids []int64) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *models.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) ListByGame(ctx context.Context, gameID int64) ([]models.ReviewRow, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ReviewRow), args.Error(1)
}

func (m *MockReviewRepository) Exists(ctx context.Context, userID, gameID int64) (bool, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) CountByGame(ctx context.Context, gameID int64) (int64, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(int64), args.Error(1)
}

type MockLibraryRepository struct {
	mock.Mock
}

func (m *MockLibraryRepository) AddWishlist(ctx context.Context, userID, gameID int64) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockLibraryRepository) RemoveWishlist(ctx context.Context, userID, gameID int64) (bool, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryRepository) WishlistExists(ctx context.Context, userID, gameID int64) (bool, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryRepository) CountWishlists(ctx context.Context, gameID int64) (int64, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLibraryRepository) AddOwned(ctx context.Context, userID, gameID int64) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockLibraryRepository) RemoveOwned(ctx context.Context, userID, gameID int64) (bool, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryRepository) OwnedExists(ctx context.Context, userID, gameID int64) (bool, error) {
	args := m.Called(ctx, userID, gameID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLibraryRepository) CountOwners(ctx context.Context, gameID int64) (int64, error) {
	args := m.Called(ctx, gameID)
	return args.Get(0).(int64), args.Error(1)
}
