package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"b2b-showcase-backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func adminTestRouter(adminEmails []string, authedEmail string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	if authedEmail != "" {
		r.Use(func(c *gin.Context) {
			c.Set(shared.CtxUserEmail, authedEmail)
		})
	}
	r.Use(AdminMiddleware(adminEmails))
	r.GET("/admin", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestAdminMiddleware_AllowsListedEmail(t *testing.T) {
	r := adminTestRouter([]string{"admin@b2b.example.com"}, "admin@b2b.example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_CaseInsensitive(t *testing.T) {
	r := adminTestRouter([]string{" Admin@B2B.example.com "}, "admin@b2b.example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminMiddleware_RejectsUnlistedEmail(t *testing.T) {
	r := adminTestRouter([]string{"admin@b2b.example.com"}, "viewer@b2b.example.com")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminMiddleware_RejectsAnonymous(t *testing.T) {
	r := adminTestRouter([]string{"admin@b2b.example.com"}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUserEmail_FallsBackToSystemIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Equal(t, shared.SystemIdentity, UserEmail(c))

	c.Set(shared.CtxUserEmail, "admin@b2b.example.com")
	assert.Equal(t, "admin@b2b.example.com", UserEmail(c))
}
