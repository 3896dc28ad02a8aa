package models

import (
	"time"
)

type Comment struct {
	CommentID   string    `json:"comment_id" gorm:"primaryKey;size:191"`
	PostID      string    `json:"post_id" gorm:"not null;index;size:191"`
	MemberEmail string    `json:"member_email" gorm:"not null;index;size:255"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	CreatedAt   time.Time `json:"created_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
}

// CommentView is a comment joined with its author's display fields, the
// shape the feed preview and the comment API return.
type CommentView struct {
	CommentID       string    `json:"comment_id"`
	PostID          string    `json:"post_id"`
	MemberEmail     string    `json:"member_email"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"created_at"`
	UsernameDisplay string    `json:"username_display"`
	Username        string    `json:"username"`
	ProfilePicURL   *string   `json:"profile_pic_url"`
}
