package controllers

import (
	"log"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
)

type ProfileController struct {
	db        *gorm.DB
	uploadDir string
}

func NewProfileController(db *gorm.DB, uploadDir string) *ProfileController {
	return &ProfileController{db: db, uploadDir: uploadDir}
}

// GetProfile loads the member's profile view: identity fields, bookshelf,
// own posts with like counts recomputed from the like table, and the
// bookmarked-posts tab.
func (pc *ProfileController) GetProfile(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var profile models.Member
	if err := pc.db.Where("email = ?", memberEmail).First(&profile).Error; err != nil {
		log.Printf("Profile Load Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	var bookshelf []models.BookShelf
	if err := pc.db.Where("member_email = ?", memberEmail).
		Order("date_added DESC").Find(&bookshelf).Error; err != nil {
		log.Printf("Profile Load Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	var posts []models.FeedPost
	if err := pc.db.Where("member_email = ?", memberEmail).
		Order("created_at DESC").Find(&posts).Error; err != nil {
		log.Printf("Profile Load Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	ownPosts := make([]models.PostWithLikes, 0, len(posts))
	for _, post := range posts {
		var likes int64
		if err := pc.db.Model(&models.PostLike{}).
			Where("post_id = ?", post.PostID).Count(&likes).Error; err != nil {
			log.Printf("Profile Load Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}
		ownPosts = append(ownPosts, models.PostWithLikes{FeedPost: post, LikeTally: likes})
	}

	bookmarked := []models.BookmarkedPost{}
	err := pc.db.Table("post_bookmarks pb").
		Select("fp.post_id, fp.content, m.username_display, m.username, m.profile_pic_url").
		Joins("JOIN feed_posts fp ON pb.post_id = fp.post_id").
		Joins("JOIN members m ON fp.member_email = m.email").
		Where("pb.member_email = ?", memberEmail).
		Order("pb.bookmark_id DESC").
		Scan(&bookmarked).Error
	if err != nil {
		log.Printf("Profile Load Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile":          profile,
		"bookshelf":        bookshelf,
		"reviews":          ownPosts,
		"bookmarked_posts": bookmarked,
	})
}

// UpdateProfile accepts a multipart form with display name, bio, and an
// optional profile picture. Uploaded files land in the public upload
// directory under a generated name.
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	usernameDisplay := c.PostForm("username_display")
	bio := c.PostForm("bio")

	updates := map[string]interface{}{
		"username_display": usernameDisplay,
		"bio":              bio,
	}

	if file, err := c.FormFile("profile_pic"); err == nil {
		filename := uuid.New().String() + filepath.Ext(file.Filename)
		dst := filepath.Join(pc.uploadDir, filename)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			log.Printf("Profile Update Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		updates["profile_pic_url"] = "/uploads/" + filename
	}

	if err := pc.db.Model(&models.Member{}).Where("email = ?", memberEmail).
		Updates(updates).Error; err != nil {
		log.Printf("Profile Update Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.Redirect(http.StatusFound, "/profile")
}
