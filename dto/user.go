package dto

import (
	"time"

	"tonotes/model"
)

type UserLink struct {
	Href   string `json:"href"`
	Method string `json:"method,omitempty"`
}

type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type IdentityResponse struct {
	UserID    string              `json:"user_id"`
	Email     string              `json:"email"`
	ExpiresAt *time.Time          `json:"expires_at,omitempty"`
	Links     map[string]UserLink `json:"_links,omitempty"` // HAL UserLinks
}

func ToIdentityResponse(identity model.Identity, links map[string]UserLink) IdentityResponse {
	resp := IdentityResponse{
		UserID: identity.UserID,
		Email:  identity.Email,
		Links:  links,
	}
	if !identity.ExpiresAt.IsZero() {
		exp := identity.ExpiresAt.UTC()
		resp.ExpiresAt = &exp
	}
	return resp
}

type AuthStatusResponse struct {
	Provider          string   `json:"provider"`
	Issuer            string   `json:"issuer,omitempty"`
	RevocationEnabled bool     `json:"revocation_enabled"`
	Endpoints         []string `json:"endpoints"`
}
