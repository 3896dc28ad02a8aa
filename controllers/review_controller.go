package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
	"moonlitpage-api/services"
	"moonlitpage-api/utils"
)

const reviewPageSize = 5

type ReviewController struct {
	db       *gorm.DB
	resolver services.TitleResolver
}

func NewReviewController(db *gorm.DB, resolver services.TitleResolver) *ReviewController {
	return &ReviewController{db: db, resolver: resolver}
}

type PostReviewRequest struct {
	Content string `form:"content" json:"content"`
	BookID  string `form:"book_id" json:"book_id"`
}

func (rc *ReviewController) PostReview(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req PostReviewRequest
	_ = c.ShouldBind(&req)

	if strings.TrimSpace(req.Content) == "" {
		utils.SendValidationError(c, "Missing review content")
		return
	}

	review := models.Review{
		MemberEmail: memberEmail,
		Content:     req.Content,
	}
	if req.BookID != "" {
		review.BookID = &req.BookID
	}

	if err := rc.db.Create(&review).Error; err != nil {
		log.Printf("Review Post Error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/reviews?book_id="+req.BookID)
}

// GetReviews shows up to five reviews for one book, joined with author
// display names, newest first.
func (rc *ReviewController) GetReviews(c *gin.Context) {
	bookID := c.Query("book_id")
	if bookID == "" {
		c.Redirect(http.StatusFound, "/book")
		return
	}

	reviews := []models.ReviewView{}
	err := rc.db.Table("reviews r").
		Select("r.*, m.username_display").
		Joins("JOIN members m ON r.member_email = m.email").
		Where("r.book_id = ?", bookID).
		Order("r.created_at DESC").
		Limit(reviewPageSize).
		Scan(&reviews).Error
	if err != nil {
		log.Printf("Reviews Page Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load reviews"})
		return
	}

	bookTitle := rc.resolver.ResolveTitle(c.Request.Context(), bookID)

	c.JSON(http.StatusOK, gin.H{
		"bookId":    bookID,
		"bookTitle": bookTitle,
		"reviews":   reviews,
	})
}
