package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"moonlitpage-api/middleware"
)

type HomeController struct{}

func NewHomeController() *HomeController {
	return &HomeController{}
}

func (hc *HomeController) Index(c *gin.Context) {
	var user interface{}
	if email := c.GetString(middleware.CtxMemberEmail); email != "" {
		user = gin.H{
			"email":            email,
			"username":         c.GetString(middleware.CtxUsername),
			"username_display": c.GetString(middleware.CtxUsernameDisplay),
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"title": "MOONLITPAGE",
		"user":  user,
	})
}

func (hc *HomeController) ContactPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"title": "Contact | MOONLITPAGE"})
}

func (hc *HomeController) Contact(c *gin.Context) {
	// Messages are logged only; there is no contact inbox.
	log.Printf("Contact message from %s: %s", c.PostForm("email"), c.PostForm("message"))
	c.Redirect(http.StatusFound, "/contact")
}
