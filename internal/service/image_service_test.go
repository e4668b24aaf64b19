package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/max-shi/game-api-server/internal/models"
	"github.com/max-shi/game-api-server/internal/storage"
)

func newImageServiceForTest(t *testing.T) (ImageService, *MockUserRepository, *MockGameRepository) {
	t.Helper()
	userImages, err := storage.NewImageStore(t.TempDir(), "user")
	require.NoError(t, err)
	gameImages, err := storage.NewImageStore(t.TempDir(), "game")
	require.NoError(t, err)

	users := new(MockUserRepository)
	games := new(MockGameRepository)
	return NewImageService(users, games, userImages, gameImages), users, games
}

func TestSetUserImage_CreateThenReplace(t *testing.T) {
	svc, users, _ := newImageServiceForTest(t)

	user := &models.User{ID: 3}
	users.On("FindByID", mock.Anything, int64(3)).Return(user, nil)
	users.On("Update", mock.Anything, user).Return(nil)

	created, err := svc.SetUserImage(context.Background(), 3, "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, created)
	require.NotNil(t, user.ImageFilename)
	assert.Equal(t, "user_3.png", *user.ImageFilename)

	created, err = svc.SetUserImage(context.Background(), 3, "image/jpeg", []byte("jpeg-bytes"))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "user_3.jpeg", *user.ImageFilename)

	data, contentType, err := svc.GetUserImage(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), data)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestSetUserImage_UnsupportedType(t *testing.T) {
	svc, users, _ := newImageServiceForTest(t)

	users.On("FindByID", mock.Anything, int64(3)).Return(&models.User{ID: 3}, nil)

	_, err := svc.SetUserImage(context.Background(), 3, "image/webp", []byte("x"))
	assert.ErrorIs(t, err, storage.ErrUnsupportedContentType)
}

func TestGetUserImage_FileMissingOnDisk(t *testing.T) {
	svc, users, _ := newImageServiceForTest(t)

	filename := "user_3.png"
	users.On("FindByID", mock.Anything, int64(3)).
		Return(&models.User{ID: 3, ImageFilename: &filename}, nil)

	_, _, err := svc.GetUserImage(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestGetGameImage_FileMissingOnDisk(t *testing.T) {
	svc, _, games := newImageServiceForTest(t)

	filename := "game_5.jpeg"
	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1, ImageFilename: &filename}, nil)

	_, _, err := svc.GetGameImage(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestGetUserImage_NoImage(t *testing.T) {
	svc, users, _ := newImageServiceForTest(t)

	users.On("FindByID", mock.Anything, int64(3)).Return(&models.User{ID: 3}, nil)

	_, _, err := svc.GetUserImage(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNoImage)
}

func TestDeleteUserImage(t *testing.T) {
	svc, users, _ := newImageServiceForTest(t)

	user := &models.User{ID: 3}
	users.On("FindByID", mock.Anything, int64(3)).Return(user, nil)
	users.On("Update", mock.Anything, user).Return(nil)

	_, err := svc.SetUserImage(context.Background(), 3, "image/png", []byte("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUserImage(context.Background(), 3))
	assert.Nil(t, user.ImageFilename)

	// a second delete finds nothing to remove
	assert.ErrorIs(t, svc.DeleteUserImage(context.Background(), 3), ErrNoImage)
}

func TestSetGameImage_CreatorOnly(t *testing.T) {
	svc, _, games := newImageServiceForTest(t)

	games.On("GetByID", mock.Anything, int64(5)).
		Return(&models.Game{ID: 5, CreatorID: 1}, nil)

	_, err := svc.SetGameImage(context.Background(), 2, 5, "image/png", []byte("x"))
	assert.ErrorIs(t, err, ErrNotCreator)

	err = svc.DeleteGameImage(context.Background(), 2, 5)
	assert.ErrorIs(t, err, ErrNotCreator)
}

func TestSetGameImage_Success(t *testing.T) {
	svc, _, games := newImageServiceForTest(t)

	game := &models.Game{ID: 5, CreatorID: 1}
	games.On("GetByID", mock.Anything, int64(5)).Return(game, nil)
	games.On("Update", mock.Anything, game).Return(nil)

	created, err := svc.SetGameImage(context.Background(), 1, 5, "image/gif", []byte("gif-bytes"))
	require.NoError(t, err)
	assert.True(t, created)

	data, contentType, err := svc.GetGameImage(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, []byte("gif-bytes"), data)
	assert.Equal(t, "image/gif", contentType)
}

func TestGameImage_GameNotFound(t *testing.T) {
	svc, _, games := newImageServiceForTest(t)

	games.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := svc.GetGameImage(context.Background(), 99)
	assert.ErrorIs(t, err, ErrGameNotFound)
}
