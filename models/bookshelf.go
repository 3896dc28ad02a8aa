package models

import (
	"time"
)

// BookShelf tracks one book on a member's personal shelf. Book metadata is
// copied in at add time because the catalog is not stored locally.
type BookShelf struct {
	ShelfID     uint      `json:"shelf_id" gorm:"primaryKey;column:shelf_id"`
	MemberEmail string    `json:"member_email" gorm:"not null;index;size:255"`
	BookID      string    `json:"book_id" gorm:"size:100"`
	Title       string    `json:"title" gorm:"not null;size:255"`
	Author      string    `json:"author" gorm:"size:255"`
	IsOwned     bool      `json:"is_owned" gorm:"default:false"`
	IsRead      bool      `json:"is_read" gorm:"default:false"`
	DateAdded   time.Time `json:"date_added" gorm:"autoCreateTime;column:date_added"`
}

type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	MemberEmail string    `json:"member_email" gorm:"not null;index;size:255"`
	BookID      *string   `json:"book_id" gorm:"index;size:100"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
}

// ReviewView is a review joined with its author's display name.
type ReviewView struct {
	ID              uint      `json:"id"`
	MemberEmail     string    `json:"member_email"`
	BookID          *string   `json:"book_id"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UsernameDisplay string    `json:"username_display"`
}
