package handlers

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// The construction wall is a lower-stakes gate than the admin login:
// its own password, its own cookie, never the admin session marker.

const ConstructionCookieName = "construction_access"

type ConstructionGate struct {
	Enabled  bool
	Password string
	Secret   string
	TTL      time.Duration
}

func (g ConstructionGate) cookieValid(raw string) bool {
	if strings.TrimSpace(raw) == "" {
		return false
	}
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(g.Secret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}
	role, _ := claims["role"].(string)
	return role == "visitor"
}

/*
GET /api/construction-status
- fails open: an internal error reports the site as active
*/
func ConstructionStatus(gate ConstructionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/construction-status"
		defer handlePanic(c, route)

		setNoStoreHeaders(c)

		if !gate.Enabled {
			c.JSON(http.StatusOK, gin.H{
				"isUnderConstruction": false,
				"message":             "Site está ativo",
			})
			return
		}

		cookie, _ := c.Cookie(ConstructionCookieName)
		if gate.cookieValid(cookie) {
			c.JSON(http.StatusOK, gin.H{
				"isUnderConstruction": true,
				"authorized":          true,
				"message":             "Acesso autorizado",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"isUnderConstruction": true,
			"requiresAuth":        true,
			"message":             "Site está em construção",
		})
	}
}

type ConstructionLoginRequest struct {
	Password string `json:"password"`
}

/*
POST /api/construction/login
- sets the gate cookie on success; expiry matches the token
*/
func ConstructionLogin(gate ConstructionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/construction/login"
		defer handlePanic(c, route)

		var req ConstructionLoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid body")
			return
		}

		if strings.TrimSpace(gate.Password) == "" || strings.TrimSpace(gate.Secret) == "" {
			log.Printf("[%s] construction gate not configured", route)
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   "Configuração não encontrada",
			})
			return
		}

		if subtle.ConstantTimeCompare([]byte(gate.Password), []byte(req.Password)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Palavra-passe incorreta",
			})
			return
		}

		signed, err := signSessionToken(gate.Secret, "visitor", gate.TTL, time.Now())
		if err != nil {
			log.Printf("[%s] token generation failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "token generation failed")
			return
		}

		c.SetCookie(
			ConstructionCookieName,
			signed,
			int(gate.TTL.Seconds()),
			"/",
			"",
			false,
			true,
		)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
