package models

type User struct {
	ID            int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	Email         string  `json:"email" gorm:"uniqueIndex;size:256;not null"`
	Name          string  `json:"name" gorm:"not null"`
	Password      string  `json:"-" gorm:"column:password_hash;not null"`
	ImageFilename *string `json:"-" gorm:"size:64"`
	AuthToken     *string `json:"-" gorm:"index;size:64"`
}

func (User) TableName() string {
	return "users"
}
