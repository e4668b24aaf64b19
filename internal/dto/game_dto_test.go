package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/max-shi/game-api-server/internal/models"
)

func TestSplitPlatformIDs(t *testing.T) {
	assert.Equal(t, []int64{1, 3, 5}, splitPlatformIDs("1,3,5"))
	assert.Equal(t, []int64{7}, splitPlatformIDs("7"))
	assert.Empty(t, splitPlatformIDs(""))
	assert.Equal(t, []int64{1, 2}, splitPlatformIDs(" 1 , 2 "))
}

func TestFromListingToSummary(t *testing.T) {
	rating := 7.5
	summary := FromListingToSummary(models.GameListing{
		GameID:      5,
		Title:       "Spacefarer",
		GenreID:     3,
		CreatorID:   1,
		CreatorName: "Mei",
		Price:       2999,
		Rating:      &rating,
		PlatformIDs: "1,2",
	})

	assert.Equal(t, int64(5), summary.GameID)
	assert.Equal(t, "Mei", summary.CreatorName)
	assert.Equal(t, []int64{1, 2}, summary.PlatformIDs)
	assert.Equal(t, &rating, summary.Rating)
}

func TestFromListingToSummary_NoPlatformsNoRating(t *testing.T) {
	summary := FromListingToSummary(models.GameListing{GameID: 5})
	assert.Nil(t, summary.Rating)
	assert.Empty(t, summary.PlatformIDs)
}
