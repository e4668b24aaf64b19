package dto

import (
	"time"

	"github.com/max-shi/game-api-server/internal/models"
)

// CreateReviewDTO for posting a review; rating is 1-10, text optional
type CreateReviewDTO struct {
	Rating int     `json:"rating" binding:"required,min=1,max=10"`
	Review *string `json:"review" binding:"omitempty,max=512"`
}

// ReviewResponse for returning one review with the reviewer's name
type ReviewResponse struct {
	ReviewerID   int64     `json:"reviewerId"`
	ReviewerName string    `json:"reviewerName"`
	Rating       int       `json:"rating"`
	Review       *string   `json:"review,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

// FromRowToReviewResponse converts a joined review row to its response shape
func FromRowToReviewResponse(row models.ReviewRow) ReviewResponse {
	return ReviewResponse{
		ReviewerID:   row.UserID,
		ReviewerName: row.ReviewerName,
		Rating:       row.Rating,
		Review:       row.Text,
		Timestamp:    row.CreatedAt,
	}
}
