package controllers

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
	"moonlitpage-api/utils"
)

// PostController owns the social interaction endpoints: bookmark toggling,
// commenting, and the transactional like counter.
type PostController struct {
	db *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{db: db}
}

type PostIDRequest struct {
	PostID string `form:"postId" json:"postId"`
}

type CommentRequest struct {
	PostID  string `form:"postId" json:"postId"`
	Content string `form:"content" json:"content"`
}

// ToggleBookmark flips the (post, member) bookmark state and reports which
// way it went.
func (pc *PostController) ToggleBookmark(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req PostIDRequest
	_ = c.ShouldBind(&req)

	if req.PostID == "" {
		utils.SendValidationError(c, "Missing Post ID")
		return
	}

	var existing models.PostBookmark
	err := pc.db.Where("post_id = ? AND member_email = ?", req.PostID, memberEmail).
		First(&existing).Error

	switch {
	case err == nil:
		if err := pc.db.Delete(&existing).Error; err != nil {
			log.Printf("Toggle Bookmark Error: %v", err)
			utils.SendServerError(c)
			return
		}
		utils.SendAction(c, "removed")

	case err == gorm.ErrRecordNotFound:
		bookmark := models.PostBookmark{
			PostID:      req.PostID,
			MemberEmail: memberEmail,
		}
		if err := pc.db.Create(&bookmark).Error; err != nil {
			log.Printf("Toggle Bookmark Error: %v", err)
			utils.SendServerError(c)
			return
		}
		utils.SendAction(c, "added")

	default:
		log.Printf("Toggle Bookmark Error: %v", err)
		utils.SendServerError(c)
	}
}

// AddComment inserts a comment and returns it joined with the author's
// display fields plus the post's updated comment count.
func (pc *PostController) AddComment(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req CommentRequest
	_ = c.ShouldBind(&req)

	if req.PostID == "" || strings.TrimSpace(req.Content) == "" {
		utils.SendValidationError(c, "Missing Post ID or comment")
		return
	}

	comment := models.Comment{
		CommentID:   uuid.New().String(),
		PostID:      req.PostID,
		MemberEmail: memberEmail,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}

	if err := pc.db.Create(&comment).Error; err != nil {
		log.Printf("Comment Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	var newComment models.CommentView
	err := pc.db.Table("comments c").
		Select("c.*, m.username_display, m.username, m.profile_pic_url").
		Joins("JOIN members m ON c.member_email = m.email").
		Where("c.comment_id = ?", comment.CommentID).
		Scan(&newComment).Error
	if err != nil {
		log.Printf("Comment Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	var count int64
	if err := pc.db.Model(&models.Comment{}).Where("post_id = ?", req.PostID).Count(&count).Error; err != nil {
		log.Printf("Comment Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"action":          "commented",
		"newComment":      newComment,
		"newCommentCount": count,
	})
}

// Like inserts the (post, member) like row and bumps the denormalized
// counter in the same transaction.
func (pc *PostController) Like(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req PostIDRequest
	_ = c.ShouldBind(&req)

	if req.PostID == "" {
		utils.SendValidationError(c, "Missing Post ID")
		return
	}

	var existing models.PostLike
	if err := pc.db.Where("post_id = ? AND member_email = ?", req.PostID, memberEmail).
		First(&existing).Error; err == nil {
		utils.SendError(c, http.StatusConflict, "Post already liked")
		return
	}

	err := pc.db.Transaction(func(tx *gorm.DB) error {
		like := models.PostLike{
			PostID:      req.PostID,
			MemberEmail: memberEmail,
		}
		if err := tx.Create(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.FeedPost{}).Where("post_id = ?", req.PostID).
			UpdateColumn("like_count", gorm.Expr("like_count + ?", 1)).Error
	})
	if err != nil {
		log.Printf("Like Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	utils.SendAction(c, "liked")
}

// Unlike removes the like row and decrements the counter transactionally.
func (pc *PostController) Unlike(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req PostIDRequest
	_ = c.ShouldBind(&req)

	if req.PostID == "" {
		utils.SendValidationError(c, "Missing Post ID")
		return
	}

	var like models.PostLike
	if err := pc.db.Where("post_id = ? AND member_email = ?", req.PostID, memberEmail).
		First(&like).Error; err != nil {
		utils.SendError(c, http.StatusNotFound, "Like not found")
		return
	}

	err := pc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&like).Error; err != nil {
			return err
		}
		return tx.Model(&models.FeedPost{}).Where("post_id = ?", req.PostID).
			UpdateColumn("like_count", gorm.Expr("like_count - ?", 1)).Error
	})
	if err != nil {
		log.Printf("Unlike Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	utils.SendAction(c, "unliked")
}
