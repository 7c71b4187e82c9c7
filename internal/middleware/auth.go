package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "smartserve/internal/pkg/jwt"
	"smartserve/internal/pkg/response"
	"smartserve/internal/session"
)

// Cookie names for the two session kinds. Customers and admins hold
// independent sessions, matching the original split identity model.
const (
	UserCookie  = "session"
	AdminCookie = "admin_session"
)

// Context keys set by the auth middleware.
const (
	CtxUserID  = "user_id"
	CtxAdminID = "admin_id"
	CtxSession = "session"
)

type Authenticator struct {
	jwt      *jwtsvc.Service
	sessions session.Store
}

func NewAuthenticator(jwt *jwtsvc.Service, sessions session.Store) *Authenticator {
	return &Authenticator{jwt: jwt, sessions: sessions}
}

// Resolve validates the token from the given cookie (or a Bearer header)
// and returns the live session if its scope matches.
func (a *Authenticator) Resolve(c *gin.Context, cookieName, scope string) *session.Session {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return nil
	}

	claims, err := a.jwt.ValidateToken(token)
	if err != nil || claims.Scope != scope {
		return nil
	}

	sess, err := a.sessions.Get(c.Request.Context(), claims.ID)
	if err != nil {
		return nil
	}
	return sess
}

// RequireUser gates customer endpoints.
func (a *Authenticator) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := a.Resolve(c, UserCookie, jwtsvc.ScopeUser)
		if sess == nil {
			response.Error(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Set(CtxUserID, sess.UserID)
		c.Set(CtxSession, sess)
		c.Next()
	}
}

// RequireAdmin gates administrative endpoints.
func (a *Authenticator) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := a.Resolve(c, AdminCookie, jwtsvc.ScopeAdmin)
		if sess == nil {
			response.Error(c, http.StatusUnauthorized, "Admin authentication required")
			c.Abort()
			return
		}
		c.Set(CtxAdminID, sess.AdminID)
		c.Set(CtxSession, sess)
		c.Next()
	}
}

// TokenID returns the token ID of a syntactically valid session token from
// the given cookie, or "" when absent. Used by logout to revoke the session
// record without requiring the session to still be live.
func (a *Authenticator) TokenID(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		token = bearerToken(c)
	}
	if token == "" {
		return ""
	}
	claims, err := a.jwt.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.ID
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
