package models

import (
	"time"
)

type Member struct {
	Email           string    `json:"email" gorm:"primaryKey;size:255"`
	Username        string    `json:"username" gorm:"not null;size:100"`
	UsernameDisplay string    `json:"username_display" gorm:"size:100"`
	Phone           string    `json:"phone" gorm:"size:20"`
	Password        string    `json:"-" gorm:"not null;size:255"`
	Bio             string    `json:"bio" gorm:"size:500"`
	ProfilePicURL   *string   `json:"profile_pic_url" gorm:"size:500"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	// Relationships
	Posts     []FeedPost  `json:"posts,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
	BookShelf []BookShelf `json:"bookshelf,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
	Reviews   []Review    `json:"reviews,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
}
