package models

import "time"

type Game struct {
	ID            int64     `json:"gameId" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"uniqueIndex;size:128;not null"`
	Description   string    `json:"description" gorm:"not null"`
	CreatedAt     time.Time `json:"creationDate" gorm:"autoCreateTime"`
	ImageFilename *string   `json:"-" gorm:"size:64"`
	CreatorID     int64     `json:"creatorId" gorm:"not null;index"`
	GenreID       int64     `json:"genreId" gorm:"not null;index"`
	Price         int64     `json:"price" gorm:"not null"`

	// Associations
	Creator *User  `json:"-" gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE;"`
	Genre   *Genre `json:"-" gorm:"foreignKey:GenreID"`
}

func (Game) TableName() string {
	return "games"
}

// GamePlatform is one row of the game/platform join table. Rows are managed
// explicitly (full replace on edit) rather than through a gorm many2many
// association, so the repository controls the insert strategy per backend.
type GamePlatform struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	GameID     int64 `gorm:"not null;uniqueIndex:idx_game_platform"`
	PlatformID int64 `gorm:"not null;uniqueIndex:idx_game_platform"`
}

func (GamePlatform) TableName() string {
	return "game_platforms"
}
