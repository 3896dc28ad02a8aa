package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"moonlitpage-api/middleware"
	"moonlitpage-api/models"
)

func newAuthRouter(db *gorm.DB) *gin.Engine {
	r := newTestRouter("")
	ac := NewAuthController(db, "test-secret", nil, false)
	r.POST("/register", ac.Register)
	r.POST("/login", ac.Login)
	r.GET("/logout", ac.Logout)
	return r
}

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"phone":    {"0812345678"},
		"email":    {"a@x.com"},
		"password": {"Password1!"},
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var member models.Member
	require.NoError(t, db.First(&member, "email = ?", "a@x.com").Error)
	assert.Equal(t, "alice", member.Username)
	assert.Equal(t, "alice", member.UsernameDisplay)
	assert.NotEqual(t, "Password1!", member.Password) // stored hashed

	w = postForm(r, "/login", url.Values{
		"email":    {"a@x.com"},
		"password": {"Password1!"},
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var res map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.NotEmpty(t, res["token"])

	cookies := w.Result().Cookies()
	var found bool
	for _, cookie := range cookies {
		if cookie.Name == middleware.SessionCookie && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "login should set the session cookie")
}

func TestRegisterMissingFields(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	w := postForm(r, "/register", url.Values{
		"username": {"alice"},
		"email":    {"a@x.com"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Member{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createTestMember(t, db, "a@x.com", "alice")
	r := newAuthRouter(db)

	w := postForm(r, "/register", url.Values{
		"username": {"other"},
		"phone":    {"0899999999"},
		"email":    {"a@x.com"},
		"password": {"Password1!"},
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginFailures(t *testing.T) {
	db := newTestDB(t)
	createTestMember(t, db, "a@x.com", "alice")
	r := newAuthRouter(db)

	t.Run("account not found", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{
			"email":    {"nobody@x.com"},
			"password": {"whatever"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Account not found")
	})

	t.Run("wrong password", func(t *testing.T) {
		w := postForm(r, "/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"wrong"},
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Incorrect password")
	})
}

func TestSessionCookieSecureFlag(t *testing.T) {
	login := func(t *testing.T, secureCookie bool) *http.Cookie {
		t.Helper()
		db := newTestDB(t)
		createTestMember(t, db, "a@x.com", "alice")

		r := newTestRouter("")
		ac := NewAuthController(db, "test-secret", nil, secureCookie)
		r.POST("/login", ac.Login)

		w := postForm(r, "/login", url.Values{
			"email":    {"a@x.com"},
			"password": {"Password1!"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == middleware.SessionCookie {
				return cookie
			}
		}
		t.Fatal("login should set the session cookie")
		return nil
	}

	t.Run("production", func(t *testing.T) {
		cookie := login(t, true)
		assert.True(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
	})

	t.Run("development", func(t *testing.T) {
		cookie := login(t, false)
		assert.False(t, cookie.Secure)
		assert.True(t, cookie.HttpOnly)
	})
}

func TestLogoutClearsCookieAndRedirects(t *testing.T) {
	db := newTestDB(t)
	r := newAuthRouter(db)

	req, _ := http.NewRequest(http.MethodGet, "/logout", nil)
	w := performRequest(r, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var cleared bool
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "logout should expire the session cookie")
}
