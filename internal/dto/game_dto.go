package dto

import (
	"strconv"
	"strings"
	"time"

	"github.com/max-shi/game-api-server/internal/models"
)

// CreateGameDTO for listing a new game
type CreateGameDTO struct {
	Title       string  `json:"title" binding:"required,min=1,max=128"`
	Description string  `json:"description" binding:"required"`
	GenreID     int64   `json:"genreId" binding:"required"`
	Price       *int64  `json:"price" binding:"required,gte=0"`
	PlatformIDs []int64 `json:"platformIds" binding:"required,min=1"`
}

// UpdateGameDTO for editing an existing game; all fields optional
type UpdateGameDTO struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=128"`
	Description *string `json:"description" binding:"omitempty,min=1"`
	GenreID     *int64  `json:"genreId"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	PlatformIDs []int64 `json:"platformIds" binding:"omitempty,min=1"`
}

// GameSearchFilters carries the parsed /games query parameters
type GameSearchFilters struct {
	Q            string
	GenreIDs     []int64
	PlatformIDs  []int64
	MaxPrice     *int64
	CreatorID    *int64
	ReviewerID   *int64
	OwnedBy      *int64
	WishlistedBy *int64
	SortBy       string
	StartIndex   int
	Count        *int
}

// GameSummaryResponse is one row of a search result page
type GameSummaryResponse struct {
	GameID       int64     `json:"gameId"`
	Title        string    `json:"title"`
	GenreID      int64     `json:"genreId"`
	CreatorID    int64     `json:"creatorId"`
	CreatorName  string    `json:"creatorName"`
	Price        int64     `json:"price"`
	Rating       *float64  `json:"rating"`
	PlatformIDs  []int64   `json:"platformIds"`
	CreationDate time.Time `json:"creationDate"`
}

// GameDetailResponse extends the summary with description and membership counts
type GameDetailResponse struct {
	GameSummaryResponse
	Description       string `json:"description"`
	NumberOfWishlists int64  `json:"numberOfWishlists"`
	NumberOfOwners    int64  `json:"numberOfOwners"`
}

// SearchGamesResponse is the paginated search envelope; Count is the total
// number of matches before LIMIT/OFFSET
type SearchGamesResponse struct {
	Games []GameSummaryResponse `json:"games"`
	Count int64                 `json:"count"`
}

// FromListingToSummary converts a scanned listing row to its response shape
func FromListingToSummary(l models.GameListing) GameSummaryResponse {
	return GameSummaryResponse{
		GameID:       l.GameID,
		Title:        l.Title,
		GenreID:      l.GenreID,
		CreatorID:    l.CreatorID,
		CreatorName:  l.CreatorName,
		Price:        l.Price,
		Rating:       l.Rating,
		PlatformIDs:  splitPlatformIDs(l.PlatformIDs),
		CreationDate: l.CreatedAt,
	}
}

// splitPlatformIDs parses the GROUP_CONCAT column ("1,3,5") into ids.
func splitPlatformIDs(concat string) []int64 {
	ids := make([]int64, 0, 4)
	for _, part := range strings.Split(concat, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if id, err := strconv.ParseInt(part, 10, 64); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}
