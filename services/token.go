package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tonotes/model"
	"tonotes/utils"

	"github.com/golang-jwt/jwt/v5"
)

type VerifyFailure int

const (
	FailureUnknown VerifyFailure = iota
	FailureInvalid
	FailureExpired
	FailureRevoked
)

func (f VerifyFailure) String() string {
	switch f {
	case FailureInvalid:
		return "invalid"
	case FailureExpired:
		return "expired"
	case FailureRevoked:
		return "revoked"
	default:
		return "unknown"
	}
}

// VerifyError is what an IdentityVerifier fails with. The kind is kept for
// logs and metrics only.
type VerifyError struct {
	Kind VerifyFailure
	Err  error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("token %s: %v", e.Kind, e.Err)
}

func (e *VerifyError) Unwrap() error { return e.Err }

// IdentityVerifier resolves a bearer token into the caller's identity.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (model.Identity, error)
}

// JWTVerifier checks HMAC-signed ID tokens carrying user_id (or sub) and email.
type JWTVerifier struct {
	Secret []byte
	Issuer string
	Clock  utils.Clock
}

func NewJWTVerifier(secret, issuer string, clock utils.Clock) *JWTVerifier {
	if clock == nil {
		clock = utils.RealClock{}
	}
	return &JWTVerifier{Secret: []byte(secret), Issuer: issuer, Clock: clock}
}

func (v *JWTVerifier) Verify(_ context.Context, tokenString string) (model.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.Clock.Now),
	}
	if v.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.Issuer))
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return v.Secret, nil
	}, opts...)
	if err != nil {
		return model.Identity{}, classifyJWTError(err)
	}

	userID, _ := claims["user_id"].(string)
	if userID == "" {
		userID, _ = claims["sub"].(string)
	}
	if userID == "" {
		return model.Identity{}, &VerifyError{Kind: FailureInvalid, Err: errors.New("token has no user id")}
	}
	email, _ := claims["email"].(string)

	identity := model.Identity{UserID: userID, Email: email}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		identity.ExpiresAt = exp.Time
	}
	return identity, nil
}

func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return &VerifyError{Kind: FailureExpired, Err: err}
	case errors.Is(err, jwt.ErrTokenMalformed),
		errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, jwt.ErrTokenInvalidIssuer),
		errors.Is(err, jwt.ErrTokenRequiredClaimMissing),
		errors.Is(err, jwt.ErrTokenNotValidYet),
		errors.Is(err, jwt.ErrTokenInvalidClaims):
		return &VerifyError{Kind: FailureInvalid, Err: err}
	default:
		return &VerifyError{Kind: FailureUnknown, Err: err}
	}
}

// IssueToken signs a development ID token for userID.
func IssueToken(secret, issuer, userID, email string, ttl time.Duration, now time.Time) (string, error) {
	if secret == "" {
		return "", errors.New("signing secret is empty")
	}
	claims := jwt.MapClaims{
		"user_id": userID,
		"sub":     userID,
		"email":   email,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}
	if issuer != "" {
		claims["iss"] = issuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
