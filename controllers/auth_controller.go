package controllers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
	"moonlitpage-api/services"
	"moonlitpage-api/utils"
)

const sessionTTL = 7 * 24 * time.Hour

type AuthController struct {
	db           *gorm.DB
	jwtSecret    string
	emailService *services.EmailService
	secureCookie bool
}

func NewAuthController(db *gorm.DB, jwtSecret string, emailService *services.EmailService, secureCookie bool) *AuthController {
	return &AuthController{
		db:           db,
		jwtSecret:    jwtSecret,
		emailService: emailService,
		secureCookie: secureCookie,
	}
}

type LoginRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type RegisterRequest struct {
	Username string `form:"username" json:"username"`
	Phone    string `form:"phone" json:"phone"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

func (ac *AuthController) LoginPage(c *gin.Context) {
	if c.GetString(middleware.CtxMemberEmail) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": nil})
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.SendValidationError(c, "Missing email or password")
		return
	}

	var member models.Member
	if err := ac.db.Where("email = ?", req.Email).First(&member).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Account not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Incorrect password"})
		return
	}

	token, err := ac.generateJWT(member)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(sessionTTL.Seconds()), "/", "", ac.secureCookie, true)
	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"member": member,
	})
}

func (ac *AuthController) RegisterPage(c *gin.Context) {
	if c.GetString(middleware.CtxMemberEmail) != "" {
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": nil})
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	_ = c.ShouldBind(&req)

	if req.Username == "" || req.Phone == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill in all fields"})
		return
	}

	if !utils.IsValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid email address"})
		return
	}

	var existing models.Member
	if err := ac.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"message": "This email is already registered"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	member := models.Member{
		Email:           req.Email,
		Username:        req.Username,
		UsernameDisplay: req.Username,
		Phone:           req.Phone,
		Password:        string(hash),
	}

	if err := ac.db.Create(&member).Error; err != nil {
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful! Please log in."})
}

func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ac.secureCookie, true)
	c.Redirect(http.StatusFound, "/")
}

func (ac *AuthController) ForgotPage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": nil})
}

type ForgotRequest struct {
	Email string `form:"email" json:"email"`
}

// Forgot rotates the member's password to a random temporary one and mails
// it to the registered address.
func (ac *AuthController) Forgot(c *gin.Context) {
	var req ForgotRequest
	_ = c.ShouldBind(&req)

	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter your email"})
		return
	}

	var member models.Member
	if err := ac.db.Where("email = ?", req.Email).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "No account with this email"})
		return
	}

	tempPass := utils.GenerateTempPassword(8)
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPass), bcrypt.DefaultCost)
	if err != nil {
		utils.SendServerError(c)
		return
	}

	if err := ac.db.Model(&models.Member{}).Where("email = ?", req.Email).
		Update("password", string(hash)).Error; err != nil {
		utils.SendServerError(c)
		return
	}

	if err := ac.emailService.SendTemporaryPassword(member.Email, member.Username, tempPass); err != nil {
		log.Printf("Forgot password email error: %v", err)
		utils.SendServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "A temporary password was sent to your email"})
}

func (ac *AuthController) generateJWT(member models.Member) (string, error) {
	claims := jwt.MapClaims{
		"email":            member.Email,
		"username":         member.Username,
		"username_display": member.UsernameDisplay,
		"exp":              time.Now().Add(sessionTTL).Unix(),
		"iat":              time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
