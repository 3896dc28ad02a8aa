package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
	"moonlitpage-api/services"
)

type FeedController struct {
	feedService *services.FeedService
}

func NewFeedController(feedService *services.FeedService) *FeedController {
	return &FeedController{feedService: feedService}
}

// GetFeed returns the aggregated review feed plus the viewer's bookshelf
// for the share modal. One failing sub-query fails the whole request.
func (fc *FeedController) GetFeed(c *gin.Context) {
	viewerEmail := c.GetString(middleware.CtxMemberEmail)

	posts, err := fc.feedService.Feed(c.Request.Context(), viewerEmail)
	if err != nil {
		log.Printf("Feed Load Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}

	bookshelf := []models.BookShelf{}
	if viewerEmail != "" {
		bookshelf, err = fc.feedService.Bookshelf(c.Request.Context(), viewerEmail)
		if err != nil {
			log.Printf("Feed Load Error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"reviews":   posts,
		"bookshelf": bookshelf,
	})
}
