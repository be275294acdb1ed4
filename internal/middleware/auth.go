package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

const (
	UserIDKey      = "user_id"
	AccessTokenKey = "access_token"
)

var publicPrefixes = []string{
	"/api/categories",
	"/api/auth/login",
	"/api/auth/reset-password",
	"/api/terminal",
}

// IsPublicRoute reports whether a request may go through without a session.
// Project listing is public unless unpublished rows are requested, and the
// experience timeline is readable by anyone.
func IsPublicRoute(r *http.Request) bool {
	path := r.URL.Path
	if !strings.HasPrefix(path, "/api/") && !strings.HasPrefix(path, "/dashboard") {
		return true
	}

	for _, prefix := range publicPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}

	if r.Method == http.MethodGet || r.Method == http.MethodOptions {
		switch path {
		case "/api/projects":
			return r.URL.Query().Get("includeUnpublished") != "true"
		case "/api/experiences":
			return true
		}
	}
	return false
}

// SessionGate rejects non-public requests that carry no valid session. Public
// requests still get the user id attached when a valid session is present.
func SessionGate(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c, cfg.SessionCookieName)
		public := IsPublicRoute(c.Request)

		if tokenString == "" {
			if public {
				c.Next()
				return
			}
			unauthorized(c, "")
			return
		}

		userID, err := verifyToken(tokenString, cfg.SupabaseJWTSecret)
		if err != nil {
			if public {
				c.Next()
				return
			}
			unauthorized(c, err.Error())
			return
		}

		c.Set(UserIDKey, userID)
		c.Set(AccessTokenKey, tokenString)
		c.Next()
	}
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "Authentication required",
		Message: message,
	})
}

// extractToken takes the bearer token first and falls back to the session cookie.
func extractToken(c *gin.Context, cookieName string) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return cleanToken(parts[1])
		}
		return ""
	}

	if cookieName == "" {
		return ""
	}
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return cleanToken(cookie)
}

func cleanToken(raw string) string {
	token := strings.TrimSpace(raw)
	// Cookies set by browser helpers are sometimes URL-encoded
	if decoded, err := url.QueryUnescape(token); err == nil {
		token = decoded
	}
	return token
}

func verifyToken(tokenString, secret string) (string, error) {
	if strings.Count(tokenString, ".") != 2 {
		return "", errInvalidTokenFormat
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		if secret == "" {
			return nil, jwt.ErrSignatureInvalid
		}
		// Supabase JWT secret is used directly as the signing key
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		switch {
		case strings.Contains(err.Error(), "signature is invalid"):
			return "", errInvalidSignature
		case strings.Contains(err.Error(), "token is expired"):
			return "", errTokenExpired
		default:
			return "", err
		}
	}

	if !token.Valid {
		return "", errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errMissingSubject
	}
	return sub, nil
}
