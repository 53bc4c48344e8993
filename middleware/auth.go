package middleware

import (
	"strings"

	"tonotes/model"
	"tonotes/services"
	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userID"
	ContextEmail    = "email"
	ContextIdentity = "identity"
	ContextToken    = "token"
)

// BearerToken returns the credential of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func AuthMiddleware(gate *services.AccessGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		identity, err := gate.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextEmail, identity.Email)
		c.Set(ContextIdentity, identity)
		c.Set(ContextToken, token)

		c.Next()
	}
}

// CurrentIdentity reads the identity stored by AuthMiddleware.
func CurrentIdentity(c *gin.Context) (model.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}
