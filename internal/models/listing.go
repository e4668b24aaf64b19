package models

import "time"

// ReviewRow is one review joined with its reviewer's name.
type ReviewRow struct {
	Review
	ReviewerName string `gorm:"column:reviewer_name"`
}

// GameListing is the read projection scanned from the dynamic search query:
// one game joined with its creator's name, plus correlated subqueries for
// the average rating and the concatenated platform id set. It is not a table.
type GameListing struct {
	GameID      int64     `gorm:"column:game_id"`
	Title       string    `gorm:"column:title"`
	Description string    `gorm:"column:description"`
	GenreID     int64     `gorm:"column:genre_id"`
	CreatorID   int64     `gorm:"column:creator_id"`
	CreatorName string    `gorm:"column:creator_name"`
	Price       int64     `gorm:"column:price"`
	Rating      *float64  `gorm:"column:rating"`
	PlatformIDs string    `gorm:"column:platform_ids"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}
