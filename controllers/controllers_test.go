package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moonlitpage-api/database"
	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// newTestRouter returns a gin engine whose requests carry memberEmail as the
// authenticated identity, standing in for the session middleware.
func newTestRouter(memberEmail string) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if memberEmail != "" {
			c.Set(middleware.CtxMemberEmail, memberEmail)
		}
		c.Next()
	})
	return r
}

func createTestMember(t *testing.T, db *gorm.DB, email, username string) models.Member {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(t, err)
	member := models.Member{
		Email:           email,
		Username:        username,
		UsernameDisplay: username,
		Phone:           "0812345678",
		Password:        string(hash),
	}
	require.NoError(t, db.Create(&member).Error)
	return member
}

func createTestPost(t *testing.T, db *gorm.DB, email, content string) models.FeedPost {
	t.Helper()
	post := models.FeedPost{
		PostID:      uuid.New().String(),
		MemberEmail: email,
		Content:     content,
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)
	return post
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return performRequest(r, req)
}

func performRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
