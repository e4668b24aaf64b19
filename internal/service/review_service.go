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
	ErrOwnGameReview   = errors.New("cannot review your own game")
	ErrDuplicateReview = errors.New("game already reviewed by this user")
)

type ReviewService interface {
	List(ctx context.Context, gameID int64) ([]dto.ReviewResponse, error)
	Add(ctx context.Context, userID, gameID int64, in dto.CreateReviewDTO) (*models.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
	gameRepo   repository.GameRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, gameRepo repository.GameRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, gameRepo: gameRepo}
}

// List returns the game's reviews, most recent first.
func (s *reviewService) List(ctx context.Context, gameID int64) ([]dto.ReviewResponse, error) {
	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	rows, err := s.reviewRepo.ListByGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, dto.FromRowToReviewResponse(row))
	}
	return resp, nil
}

// Add rejects creator self-reviews and duplicate reviews, then inserts.
func (s *reviewService) Add(ctx context.Context, userID, gameID int64, in dto.CreateReviewDTO) (*models.Review, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	if game.CreatorID == userID {
		return nil, ErrOwnGameReview
	}

	exists, err := s.reviewRepo.Exists(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		GameID: gameID,
		UserID: userID,
		Rating: in.Rating,
		Text:   in.Review,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
