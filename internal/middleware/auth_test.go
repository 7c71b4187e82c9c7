package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/session"
)

func newTestRouter(t *testing.T) (*gin.Engine, *jwtsvc.Service, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	j := jwtsvc.New("test_secret_key_32_characters_min", time.Hour)
	store := session.NewMemoryStore()
	authn := NewAuthenticator(j, store)

	r := gin.New()
	user := r.Group("/", authn.RequireUser())
	user.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetInt64(CtxUserID)})
	})
	admin := r.Group("/admin", authn.RequireAdmin())
	admin.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin_id": c.GetInt64(CtxAdminID)})
	})
	return r, j, store
}

func openSession(t *testing.T, j *jwtsvc.Service, store session.Store, scope string, id int64) string {
	t.Helper()
	token, jti, err := j.GenerateToken(id, scope)
	require.NoError(t, err)
	sess := session.Session{}
	if scope == jwtsvc.ScopeAdmin {
		sess.AdminID = id
	} else {
		sess.UserID = id
	}
	require.NoError(t, store.Put(context.Background(), jti, sess, time.Hour))
	return token
}

func TestRequireUserWithCookie(t *testing.T) {
	r, j, store := newTestRouter(t)
	token := openSession(t, j, store, jwtsvc.ScopeUser, 7)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestRequireUserWithBearer(t *testing.T) {
	r, j, store := newTestRouter(t)
	token := openSession(t, j, store, jwtsvc.ScopeUser, 7)

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireUserWithoutToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authentication required")
}

func TestRequireUserRejectsRevokedSession(t *testing.T) {
	r, j, store := newTestRouter(t)
	token := openSession(t, j, store, jwtsvc.ScopeUser, 7)

	claims, err := j.ValidateToken(token)
	require.NoError(t, err)
	require.NoError(t, store.Delete(context.Background(), claims.ID))

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// A customer token must not open admin endpoints, even when presented on
// the admin cookie.
func TestScopeSeparation(t *testing.T) {
	r, j, store := newTestRouter(t)
	token := openSession(t, j, store, jwtsvc.ScopeUser, 7)

	req := httptest.NewRequest("GET", "/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Admin authentication required")
}

func TestRequireAdmin(t *testing.T) {
	r, j, store := newTestRouter(t)
	token := openSession(t, j, store, jwtsvc.ScopeAdmin, 3)

	req := httptest.NewRequest("GET", "/admin/me", nil)
	req.AddCookie(&http.Cookie{Name: AdminCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"admin_id":3`)
}

func TestRequireUserRejectsGarbageToken(t *testing.T) {
	r, _, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/me", nil)
	req.AddCookie(&http.Cookie{Name: UserCookie, Value: "not-a-jwt"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
