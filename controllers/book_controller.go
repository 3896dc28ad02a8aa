package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"moonlitpage-api/services"
)

const defaultBookQuery = "new releases"

type BookController struct {
	bookSearch *services.BookSearchService
}

func NewBookController(bookSearch *services.BookSearchService) *BookController {
	return &BookController{bookSearch: bookSearch}
}

// Browse searches the external catalog. An empty query browses recent
// releases; upstream failures surface as an empty result list.
func (bc *BookController) Browse(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		query = defaultBookQuery
	}

	books := bc.bookSearch.Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, gin.H{
		"books":       books,
		"searchQuery": query,
	})
}
