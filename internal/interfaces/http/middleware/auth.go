package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skylink/internal/domain/session"
	sessionstore "skylink/internal/infrastructure/session"
	"skylink/internal/shared/authorization"
	"skylink/internal/shared/config"
	apperrors "skylink/internal/shared/errors"
	"skylink/internal/shared/logger"
	"skylink/internal/shared/utils"
)

const (
	// ContextKeyHolder carries the request's *session.Holder.
	ContextKeyHolder = "session_holder"
	ContextKeyUserID = "user_id"
)

// SessionMiddleware binds every request to a session holder keyed by the
// session cookie.
type SessionMiddleware struct {
	store        session.Store
	cookie       config.CookieConfig
	maxAge       int
	onInvalidate session.InvalidateFunc
	logger       logger.Interface
}

func NewSessionMiddleware(
	store session.Store,
	cfg config.SessionConfig,
	onInvalidate session.InvalidateFunc,
	logger logger.Interface,
) *SessionMiddleware {
	return &SessionMiddleware{
		store:        store,
		cookie:       cfg.Cookie,
		maxAge:       int(cfg.GetTTL().Seconds()),
		onInvalidate: onInvalidate,
		logger:       logger,
	}
}

// Attach resolves the holder, issuing a fresh cookie when the browser has
// none, and exposes the session role to later middleware.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := utils.GetSessionCookie(c, m.cookie)
		if id == "" {
			var err error
			id, err = sessionstore.NewID()
			if err != nil {
				m.logger.Errorw("failed to issue session cookie", "error", err)
				utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
				c.Abort()
				return
			}
			utils.SetSessionCookie(c, m.cookie, id, m.maxAge)
		}

		h := session.NewHolder(m.store, id, m.onInvalidate)
		c.Set(ContextKeyHolder, h)

		s, err := h.Get(c.Request.Context())
		switch {
		case err == nil:
			c.Set(authorization.ContextKeyRole, string(s.Role))
			c.Set(ContextKeyUserID, s.UserID)
		case apperrors.IsSessionEnded(err):
		default:
			m.logger.Warnw("failed to load session", "error", err)
		}

		c.Next()
	}
}

// RequireSession sends requests without a session to /login.
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(authorization.ContextKeyRole) == "" {
			utils.ErrorResponseWithError(c, apperrors.NewNoSessionError())
			c.Abort()
			return
		}
		c.Next()
	}
}

// Holder returns the holder Attach stored on c.
func Holder(c *gin.Context) *session.Holder {
	v, ok := c.Get(ContextKeyHolder)
	if !ok {
		return nil
	}
	h, _ := v.(*session.Holder)
	return h
}
