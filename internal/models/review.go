package models

import "time"

type Review struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID    int64     `json:"gameId" gorm:"not null;uniqueIndex:idx_game_reviewer"`
	UserID    int64     `json:"userId" gorm:"not null;uniqueIndex:idx_game_reviewer"`
	Rating    int       `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 10"`
	Text      *string   `json:"review,omitempty" gorm:"column:review"`
	CreatedAt time.Time `json:"timestamp" gorm:"autoCreateTime"`

	// Associations
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game *Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "game_reviews"
}
