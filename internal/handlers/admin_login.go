package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

type AdminLoginRequest struct {
	Password string `json:"password"`
}

// AdminCredentials carries the server-held secret. Hash, when set,
// takes precedence over the plain password.
type AdminCredentials struct {
	Password     string
	PasswordHash string
}

func (c AdminCredentials) Configured() bool {
	return strings.TrimSpace(c.PasswordHash) != "" || strings.TrimSpace(c.Password) != ""
}

func (c AdminCredentials) Match(candidate string) bool {
	if hash := strings.TrimSpace(c.PasswordHash); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(c.Password), []byte(candidate)) == 1
}

func signSessionToken(secret, role string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

/*
POST /api/admin/login
- the end user sees one generic incorrect-password message; a missing
  server-side secret is a distinct configuration error
*/
func AdminLogin(creds AdminCredentials, jwtSecret string, sessionTTL time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/login"
		defer handlePanic(c, route)

		var req AdminLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if !creds.Configured() || strings.TrimSpace(jwtSecret) == "" {
			log.Printf("[%s] admin credentials not configured", route)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Configuração de administração não encontrada",
			})
			return
		}

		if !creds.Match(req.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Palavra-passe incorreta",
			})
			return
		}

		signed, err := signSessionToken(jwtSecret, "admin", sessionTTL, time.Now())
		if err != nil {
			log.Printf("[%s] token generation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   signed,
		})
	}
}
