package models

import "time"

// WishlistEntry marks a game a user wants. At most one row per (game, user).
type WishlistEntry struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID  int64     `json:"gameId" gorm:"not null;uniqueIndex:idx_wishlist_pair"`
	UserID  int64     `json:"userId" gorm:"not null;uniqueIndex:idx_wishlist_pair"`
	AddedAt time.Time `json:"addedAt" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game *Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (WishlistEntry) TableName() string {
	return "wishlist"
}

// OwnedEntry marks a game a user owns. Adding one evicts any wishlist row
// for the same pair.
type OwnedEntry struct {
	ID      int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	GameID  int64     `json:"gameId" gorm:"not null;uniqueIndex:idx_owned_pair"`
	UserID  int64     `json:"userId" gorm:"not null;uniqueIndex:idx_owned_pair"`
	AddedAt time.Time `json:"addedAt" gorm:"autoCreateTime"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;"`
	Game *Game `json:"-" gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE;"`
}

func (OwnedEntry) TableName() string {
	return "owned"
}
