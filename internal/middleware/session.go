package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"openflights/insight/internal/constants"
	reqctx "openflights/insight/internal/context"
)

// SessionMiddleware makes sure every request carries a dashboard session
// id. Unknown or malformed cookies are replaced with a fresh UUID.
func SessionMiddleware(ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(constants.SessionCookieName); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sessionID = c.Value
				}
			}

			if sessionID == "" {
				sessionID = uuid.New().String()
			}

			// Sliding expiry matches the upload store TTL.
			http.SetCookie(w, &http.Cookie{
				Name:     constants.SessionCookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			next.ServeHTTP(w, r.WithContext(reqctx.SetSessionID(r.Context(), sessionID)))
		})
	}
}
