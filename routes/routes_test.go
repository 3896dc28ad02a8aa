package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"moonlitpage-api/config"
	"moonlitpage-api/database"
	"moonlitpage-api/models"
	"moonlitpage-api/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret: "test-secret",
		UploadDir: t.TempDir(),
	}

	r := gin.New()
	SetupRoutes(r, db, cfg, services.NewEmailService(cfg))
	return r, db
}

type client struct {
	t      *testing.T
	r      *gin.Engine
	cookie *http.Cookie
}

func (c *client) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.r.ServeHTTP(w, req)
	return w
}

func (c *client) login(email, password string) {
	w := c.do(http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
	require.Equal(c.t, http.StatusOK, w.Code)
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "ml_session" {
			c.cookie = cookie
		}
	}
	require.NotNil(c.t, c.cookie, "login must set the session cookie")
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRegisterLoginToggleBookmarkFlow(t *testing.T) {
	r, db := newTestServer(t)
	c := &client{t: t, r: r}

	w := c.do(http.MethodPost, "/register", url.Values{
		"username": {"alice"},
		"phone":    {"0812345678"},
		"email":    {"a@x.com"},
		"password": {"Password1!"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	c.login("a@x.com", "Password1!")

	post := models.FeedPost{
		PostID:      "7",
		MemberEmail: "a@x.com",
		Content:     "a post to bookmark",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)

	w = c.do(http.MethodPost, "/api/post/toggle-bookmark", url.Values{"postId": {"7"}})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "added", res["action"])

	w = c.do(http.MethodPost, "/api/post/toggle-bookmark", url.Values{"postId": {"7"}})
	require.Equal(t, http.StatusOK, w.Code)
	res = decode(t, w)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, "removed", res["action"])
}

func TestCommentFlowIncrementsCount(t *testing.T) {
	r, db := newTestServer(t)
	c := &client{t: t, r: r}

	w := c.do(http.MethodPost, "/register", url.Values{
		"username": {"alice"},
		"phone":    {"0812345678"},
		"email":    {"a@x.com"},
		"password": {"Password1!"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	c.login("a@x.com", "Password1!")

	post := models.FeedPost{
		PostID:      "7",
		MemberEmail: "a@x.com",
		Content:     "a post to comment on",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, db.Create(&post).Error)

	w = c.do(http.MethodPost, "/api/post/comment", url.Values{
		"postId":  {"7"},
		"content": {"nice book"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	res := decode(t, w)
	assert.Equal(t, true, res["success"])
	assert.Equal(t, float64(1), res["newCommentCount"])

	newComment := res["newComment"].(map[string]interface{})
	assert.Equal(t, "nice book", newComment["content"])
	assert.Equal(t, "alice", newComment["username_display"])

	var count int64
	require.NoError(t, db.Model(&models.Comment{}).Where("post_id = ?", "7").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGateRedirectsAnonymousFeed(t *testing.T) {
	r, _ := newTestServer(t)
	c := &client{t: t, r: r}

	w := c.do(http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = c.do(http.MethodPost, "/api/post/toggle-bookmark", url.Values{"postId": {"7"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPingIsPublic(t *testing.T) {
	r, _ := newTestServer(t)
	c := &client{t: t, r: r}

	w := c.do(http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}
