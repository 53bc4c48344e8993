package handler

import (
	"tonotes/dto"
	"tonotes/middleware"
	"tonotes/services"
	"tonotes/utils"

	"github.com/gin-gonic/gin"
)

const AuthBasePath = "/api/v1/auth"

type AuthHandler struct {
	gate   *services.AccessGate
	issuer string
}

func NewAuthHandler(gate *services.AccessGate, issuer string) *AuthHandler {
	return &AuthHandler{gate: gate, issuer: issuer}
}

func userLinks() map[string]dto.UserLink {
	return map[string]dto.UserLink{
		"self":   {Href: AuthBasePath + "/me", Method: "GET"},
		"notes":  {Href: NotesBasePath, Method: "GET"},
		"revoke": {Href: AuthBasePath + "/revoke-token", Method: "POST"},
	}
}

// presentedToken takes the bearer header, falling back to a {"token": "..."} body.
func presentedToken(c *gin.Context) string {
	if token := middleware.BearerToken(c); token != "" {
		return token
	}
	var req dto.VerifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return ""
	}
	return req.Token
}

func (h *AuthHandler) VerifyToken(c *gin.Context) {
	identity, err := h.gate.Resolve(c.Request.Context(), presentedToken(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Token verified successfully", dto.ToIdentityResponse(identity, userLinks()))
}

// Me expects AuthMiddleware to have run.
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	utils.Success(c, "User information retrieved successfully", dto.ToIdentityResponse(identity, userLinks()))
}

// RefreshToken only confirms the token is still valid; new ID tokens come
// from the identity provider.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	identity, err := h.gate.Resolve(c.Request.Context(), presentedToken(c))
	if err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Token is valid", gin.H{
		"user_id":    identity.UserID,
		"expires_at": dto.ToIdentityResponse(identity, nil).ExpiresAt,
		"note":       "ID tokens are renewed by the identity provider; request a fresh token from the client SDK.",
	})
}

func (h *AuthHandler) RevokeToken(c *gin.Context) {
	if err := h.gate.Revoke(c.Request.Context(), presentedToken(c)); err != nil {
		utils.Error(c, err)
		return
	}

	utils.Success(c, "Token revoked successfully", gin.H{"revoked": true})
}

func (h *AuthHandler) Status(c *gin.Context) {
	utils.Success(c, "Token authentication is active", dto.AuthStatusResponse{
		Provider:          "jwt",
		Issuer:            h.issuer,
		RevocationEnabled: h.gate.Revocations != nil,
		Endpoints: []string{
			"POST " + AuthBasePath + "/verify-token",
			"GET " + AuthBasePath + "/me",
			"POST " + AuthBasePath + "/refresh-token",
			"POST " + AuthBasePath + "/revoke-token",
		},
	})
}
