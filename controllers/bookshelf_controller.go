package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
	"moonlitpage-api/utils"
)

type BookshelfController struct {
	db *gorm.DB
}

func NewBookshelfController(db *gorm.DB) *BookshelfController {
	return &BookshelfController{db: db}
}

type AddShelfRequest struct {
	BookID string `form:"book_id" json:"book_id"`
	Title  string `form:"title" json:"title"`
	Author string `form:"author" json:"author"`
}

func (bc *BookshelfController) Add(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	var req AddShelfRequest
	_ = c.ShouldBind(&req)

	if req.BookID == "" || req.Title == "" || req.Author == "" {
		utils.SendValidationError(c, "Missing book_id, title or author")
		return
	}

	entry := models.BookShelf{
		MemberEmail: memberEmail,
		BookID:      req.BookID,
		Title:       req.Title,
		Author:      req.Author,
	}

	if err := bc.db.Create(&entry).Error; err != nil {
		log.Printf("Add to Shelf Error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/book")
}

// UpdateStatus sets the owned/read flags from checkbox-style values:
// "on" means true, anything else false.
func (bc *BookshelfController) UpdateStatus(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)

	shelfID := c.PostForm("shelf_id")
	if shelfID == "" {
		utils.SendValidationError(c, "Missing shelf_id")
		return
	}

	updates := map[string]interface{}{
		"is_owned": c.PostForm("is_owned") == "on",
		"is_read":  c.PostForm("is_read") == "on",
	}

	// Scoped by owner: another member's row silently stays untouched.
	if err := bc.db.Model(&models.BookShelf{}).
		Where("shelf_id = ? AND member_email = ?", shelfID, memberEmail).
		Updates(updates).Error; err != nil {
		log.Printf("Update Shelf Error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/profile#bookshelf")
}

func (bc *BookshelfController) Delete(c *gin.Context) {
	memberEmail := c.GetString(middleware.CtxMemberEmail)
	shelfID := c.Param("shelfId")

	if err := bc.db.
		Where("shelf_id = ? AND member_email = ?", shelfID, memberEmail).
		Delete(&models.BookShelf{}).Error; err != nil {
		log.Printf("Delete Shelf Error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.Redirect(http.StatusFound, "/profile#bookshelf")
}
