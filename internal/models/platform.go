package models

type Platform struct {
	ID   int64  `json:"platformId" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"unique;not null"`
}

func (Platform) TableName() string {
	return "platforms"
}
