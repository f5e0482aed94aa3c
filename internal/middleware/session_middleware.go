package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/storefront/config"
	"github.com/ikkim/storefront/pkg/util"
)

const (
	SessionIDKey       = "session_id"
	SessionTokenHeader = "X-Session-Token"
)

// SessionMiddleware binds every request to a storefront session
type SessionMiddleware struct {
	secret     string
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewSessionMiddleware(cfg config.SessionConfig, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		secret:     cfg.Secret,
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     secure,
		now:        time.Now,
	}
}

// Attach resolves the session from the X-Session-Token header or the session cookie.
// A missing, invalid or expired token starts a new session instead of failing.
// The token is re-issued on every response so the session TTL slides.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := GetLoggerFromContext(c)

		token := c.GetHeader(SessionTokenHeader)
		if token == "" {
			token, _ = c.Cookie(m.cookieName)
		}

		var sessionID string
		if token != "" {
			id, err := util.ParseSessionToken(token, m.secret)
			if err != nil {
				log.Debug("Session token rejected, starting new session", map[string]interface{}{
					"error": err.Error(),
				})
			} else {
				sessionID = id
			}
		}
		if sessionID == "" {
			sessionID = util.NewSessionID()
			log.Debug("Session started", map[string]interface{}{
				"session_id": sessionID,
			})
		}

		fresh, err := util.IssueSessionToken(sessionID, m.secret, m.ttl, m.now())
		if err != nil {
			log.Error("Failed to issue session token", err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.cookieName, fresh, int(m.ttl.Seconds()), "/", "", m.secure, true)
		c.Header(SessionTokenHeader, fresh)
		c.Set(SessionIDKey, sessionID)

		c.Next()
	}
}

// GetSessionID extracts the session ID set by Attach
func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(SessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok && id != ""
}
