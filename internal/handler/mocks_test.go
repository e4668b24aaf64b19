package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/max-shi/game-api-server/internal/dto"
	"github.com/max-shi/game-api-server/internal/models"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, email, name, password string) (*models.User, error) {
	args := m.Called(ctx, email, name, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockUserService) Logout(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserService) GetByToken(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) ViewProfile(ctx context.Context, targetID int64, requesterID *int64) (*dto.UserResponse, error) {
	args := m.Called(ctx, targetID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.UserResponse), args.Error(1)
}

func (m *MockUserService) Update(ctx context.Context, targetID int64, req dto.UpdateUserRequest) error {
	args := m.Called(ctx, targetID, req)
	return args.Error(0)
}

type MockGameService struct {
	mock.Mock
}

func (m *MockGameService) Search(ctx context.Context, filters dto.GameSearchFilters) (*dto.SearchGamesResponse, error) {
	args := m.Called(ctx, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SearchGamesResponse), args.Error(1)
}

func (m *MockGameService) GetDetail(ctx context.Context, id int64) (*dto.GameDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GameDetailResponse), args.Error(1)
}

func (m *MockGameService) Create(ctx context.Context, creatorID int64, in dto.CreateGameDTO) (*models.Game, error) {
	args := m.Called(ctx, creatorID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameService) Update(ctx context.Context, requesterID, gameID int64, in dto.UpdateGameDTO) error {
	args := m.Called(ctx, requesterID, gameID, in)
	return args.Error(0)
}

func (m *MockGameService) Delete(ctx context.Context, requesterID, gameID int64) error {
	args := m.Called(ctx, requesterID, gameID)
	return args.Error(0)
}

func (m *MockGameService) Genres(ctx context.Context) ([]models.Genre, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Genre), args.Error(1)
}

func (m *MockGameService) Platforms(ctx context.Context) ([]models.Platform, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Platform), args.Error(1)
}
