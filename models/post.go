package models

import (
	"time"
)

type FeedPost struct {
	PostID      string    `json:"post_id" gorm:"primaryKey;size:191"`
	MemberEmail string    `json:"member_email" gorm:"not null;index;size:255"`
	Content     string    `json:"content" gorm:"not null;type:text"`
	BookID      string    `json:"book_id" gorm:"size:100"`
	LikeCount   int       `json:"like_count" gorm:"default:0"`
	CreatedAt   time.Time `json:"created_at"`

	Member    Member         `json:"member" gorm:"foreignKey:MemberEmail;references:Email"`
	Likes     []PostLike     `json:"likes,omitempty" gorm:"foreignKey:PostID"`
	Bookmarks []PostBookmark `json:"bookmarks,omitempty" gorm:"foreignKey:PostID"`
	Comments  []Comment      `json:"comments,omitempty" gorm:"foreignKey:PostID"`
}

type PostLike struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PostID      string    `json:"post_id" gorm:"not null;size:191"`
	MemberEmail string    `json:"member_email" gorm:"not null;size:255"`
	CreatedAt   time.Time `json:"created_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
}

// PostBookmark is a member's saved reference to a post, toggled on and off
// independently of likes.
type PostBookmark struct {
	BookmarkID  uint      `json:"bookmark_id" gorm:"primaryKey;column:bookmark_id"`
	PostID      string    `json:"post_id" gorm:"not null;size:191"`
	MemberEmail string    `json:"member_email" gorm:"not null;size:255"`
	CreatedAt   time.Time `json:"created_at"`

	Member Member `json:"member,omitempty" gorm:"foreignKey:MemberEmail;references:Email"`
}

// FeedPostView is a feed post enriched for display: author fields, resolved
// book title, counts, and the viewing member's interaction state.
type FeedPostView struct {
	FeedPost
	UsernameDisplay string        `json:"username_display"`
	Username        string        `json:"username"`
	ProfilePicURL   *string       `json:"profile_pic_url"`
	LikeTally       int64         `json:"likeCount" gorm:"-"`
	BookRef         string        `json:"bookId" gorm:"-"`
	BookTitle       string        `json:"bookTitle"`
	CommentCount    int64         `json:"commentCount"`
	IsLiked         bool          `json:"isLiked"`
	IsBookmarked    bool          `json:"isBookmarked"`
	PreviewComments []CommentView `json:"comments" gorm:"-"`
}

// PostWithLikes carries a member's own post with its like count recomputed
// from the PostLike table rather than the denormalized counter.
type PostWithLikes struct {
	FeedPost
	LikeTally int64 `json:"likeCount"`
}

// BookmarkedPost is a row of the profile's bookmarked-posts tab.
type BookmarkedPost struct {
	PostID          string  `json:"post_id"`
	Content         string  `json:"content"`
	UsernameDisplay string  `json:"username_display"`
	Username        string  `json:"username"`
	ProfilePicURL   *string `json:"profile_pic_url"`
}
