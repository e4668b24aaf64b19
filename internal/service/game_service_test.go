package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
)

func newGameServiceForTest() (GameService, *MockGameRepository, *MockGenreRepository, *MockPlatformRepository, *MockReviewRepository, *MockLibraryRepository) {
	games := new(MockGameRepository)
	genres := new(MockGenreRepository)
	platforms := new(MockPlatformRepository)
	reviews := new(MockReviewRepository)
	library := new(MockLibraryRepository)
	svc := NewGameService(games, genres, platforms, reviews, library)
	return svc, games, genres, platforms, reviews, library
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestCreateGame_Success(t *testing.T) {
	svc, games, genres, platforms, _, _ := newGameServiceForTest()

	genres.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	platforms.On("CountByIDs", mock.Anything, []int64{1, 2}).Return(int64(2), nil)
	games.On("ExistsByTitle", mock.Anything, "Spacefarer", int64(0)).Return(false, nil)
	games.On("Create", mock.Anything, mock.AnythingOfType("*models.Game"), []int64{1, 2}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*models.Game).ID = 42
		}).
		Return(nil)

	game, err := svc.Create(context.Background(), 7, dto.CreateGameDTO{
		Title:       "Spacefarer",
		Description: "Explore the void",
		GenreID:     3,
		Price:       int64Ptr(2999),
		PlatformIDs: []int64{1, 2},
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(42), game.ID)
	assert.Equal(t, int64(7), game.CreatorID)
	games.AssertExpectations(t)
}

func TestCreateGame_UnknownGenre(t *testing.T) {
	svc, games, genres, _, _, _ := newGameServiceForTest()

	genres.On("Exists", mock.Anything, int64(99)).Return(false, nil)

	_, err := svc.Create(context.Background(), 7, dto.CreateGameDTO{
		Title:       "Spacefarer",
		Description: "Explore the void",
		GenreID:     99,
		Price:       int64Ptr(0),
		PlatformIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrGenreNotFound)
	games.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateGame_InvalidPlatform(t *testing.T) {
	svc, _, genres, platforms, _, _ := newGameServiceForTest()

	genres.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	platforms.On("CountByIDs", mock.Anything, []int64{1, 404}).Return(int64(1), nil)

	_, err := svc.Create(context.Background(), 7, dto.CreateGameDTO{
		Title:       "Spacefarer",
		Description: "Explore the void",
		GenreID:     3,
		Price:       int64Ptr(0),
		PlatformIDs: []int64{1, 404},
	})

	assert.ErrorIs(t, err, ErrInvalidPlatforms)
}

func TestCreateGame_DuplicateTitle(t *testing.T) {
	svc, games, genres, platforms, _, _ := newGameServiceForTest()

	genres.On("Exists", mock.Anything, int64(3)).Return(true, nil)
	platforms.On("CountByIDs", mock.Anything, []int64{1}).Return(int64(1), nil)
	games.On("ExistsByTitle", mock.Anything, "Spacefarer", int64(0)).Return(true, nil)

	_, err := svc.Create(context.Background(), 7, dto.CreateGameDTO{
		Title:       "Spacefarer",
		Description: "Explore the void",
		GenreID:     3,
		Price:       int64Ptr(0),
		PlatformIDs: []int64{1},
	})

	assert.ErrorIs(t, err, ErrTitleInUse)
}

func TestUpdateGame_NotCreator(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1}, nil)

	err := svc.Update(context.Background(), 2, 5, dto.UpdateGameDTO{Title: strPtr("New title")})
	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestUpdateGame_NotFound(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Update(context.Background(), 1, 5, dto.UpdateGameDTO{})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestUpdateGame_TitleTakenByOtherGame(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1, Title: "Old"}, nil)
	games.On("ExistsByTitle", mock.Anything, "Taken", int64(5)).Return(true, nil)

	err := svc.Update(context.Background(), 1, 5, dto.UpdateGameDTO{Title: strPtr("Taken")})
	assert.ErrorIs(t, err, ErrTitleInUse)
}

func TestUpdateGame_SameTitleAllowed(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1, Title: "Same"}, nil)
	games.On("Update", mock.Anything, mock.AnythingOfType("*models.Game")).Return(nil)

	err := svc.Update(context.Background(), 1, 5, dto.UpdateGameDTO{Title: strPtr("Same")})
	assert.NoError(t, err)
	games.AssertNotCalled(t, "ExistsByTitle", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateGame_ReplacesPlatforms(t *testing.T) {
	svc, games, _, platforms, _, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1, Title: "Same"}, nil)
	platforms.On("CountByIDs", mock.Anything, []int64{2, 3}).Return(int64(2), nil)
	games.On("Update", mock.Anything, mock.AnythingOfType("*models.Game")).Return(nil)
	games.On("ReplacePlatforms", mock.Anything, int64(5), []int64{2, 3}).Return(nil)

	err := svc.Update(context.Background(), 1, 5, dto.UpdateGameDTO{PlatformIDs: []int64{2, 3}})
	assert.NoError(t, err)
	games.AssertExpectations(t)
}

func TestDeleteGame_BlockedByReviews(t *testing.T) {
	svc, games, _, _, reviews, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1}, nil)
	reviews.On("CountByGame", mock.Anything, int64(5)).Return(int64(3), nil)

	err := svc.Delete(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrGameHasReviews)
	games.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDeleteGame_Success(t *testing.T) {
	svc, games, _, _, reviews, _ := newGameServiceForTest()

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1}, nil)
	reviews.On("CountByGame", mock.Anything, int64(5)).Return(int64(0), nil)
	games.On("Delete", mock.Anything, int64(5)).Return(nil)

	err := svc.Delete(context.Background(), 1, 5)
	assert.NoError(t, err)
	games.AssertExpectations(t)
}

func TestSearchGames_EmptyPage(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("Search", mock.Anything, mock.AnythingOfType("dto.GameSearchFilters")).
		Return([]models.GameListing{}, int64(0), nil)

	resp, err := svc.Search(context.Background(), dto.GameSearchFilters{Q: "no such game"})
	assert.NoError(t, err)
	assert.NotNil(t, resp.Games)
	assert.Empty(t, resp.Games)
	assert.Equal(t, int64(0), resp.Count)
}

func TestGetDetail_IncludesCounts(t *testing.T) {
	svc, games, _, _, _, library := newGameServiceForTest()

	rating := 8.5
	games.On("GetListing", mock.Anything, int64(5)).
		Return(&models.GameListing{
			GameID:      5,
			Title:       "Spacefarer",
			Description: "Explore the void",
			Rating:      &rating,
			PlatformIDs: "1,2",
		}, nil)
	library.On("CountWishlists", mock.Anything, int64(5)).Return(int64(4), nil)
	library.On("CountOwners", mock.Anything, int64(5)).Return(int64(2), nil)

	detail, err := svc.GetDetail(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, "Explore the void", detail.Description)
	assert.Equal(t, int64(4), detail.NumberOfWishlists)
	assert.Equal(t, int64(2), detail.NumberOfOwners)
	assert.Equal(t, []int64{1, 2}, detail.PlatformIDs)
}

func TestGetDetail_NotFound(t *testing.T) {
	svc, games, _, _, _, _ := newGameServiceForTest()

	games.On("GetListing", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetDetail(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGameNotFound)
}
