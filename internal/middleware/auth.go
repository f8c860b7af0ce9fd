package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/storage"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/utils"
)

var (
	ErrMissingCredentials = errors.New("missing session token")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidClaims      = errors.New("invalid token claims")
)

// Identity is the authenticated caller as asserted by the identity provider.
type Identity struct {
	UserID          string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

// Authenticator is the pluggable boundary in front of the external identity
// provider. Tests swap in a static implementation.
type Authenticator interface {
	Authenticate(r *http.Request) (*Identity, error)
}

const identityKey contextKey = "identity"

// RequireAuth rejects unauthenticated requests and stores the caller
// identity in the request context.
func RequireAuth(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := auth.Authenticate(r)
			if err != nil {
				utils.JSON(w, http.StatusUnauthorized, models.ErrorResponse{
					Code:    "unauthorized",
					Message: "Authentication required",
				})
				return
			}
			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentity retrieves the authenticated caller from context.
func GetIdentity(r *http.Request) *Identity {
	identity, _ := r.Context().Value(identityKey).(*Identity)
	return identity
}

// JWTAuthenticator verifies identity-provider session tokens (HS256) taken
// from the Authorization header or the session cookie, and lazily syncs the
// profile into the users table.
type JWTAuthenticator struct {
	Secret string
	Users  *storage.UserRepository
}

func (a *JWTAuthenticator) Authenticate(r *http.Request) (*Identity, error) {
	tokenStr := bearerToken(r)
	if tokenStr == "" {
		if cookie, err := r.Cookie("session"); err == nil {
			tokenStr = cookie.Value
		}
	}
	if tokenStr == "" {
		return nil, ErrMissingCredentials
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidClaims
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidClaims
	}

	identity := &Identity{
		UserID:          sub,
		Email:           stringClaim(claims, "email"),
		FirstName:       stringClaim(claims, "first_name"),
		LastName:        stringClaim(claims, "last_name"),
		ProfileImageURL: stringClaim(claims, "profile_image_url"),
	}

	if a.Users != nil {
		user := &models.User{
			ID:              identity.UserID,
			Email:           identity.Email,
			FirstName:       identity.FirstName,
			LastName:        identity.LastName,
			ProfileImageURL: identity.ProfileImageURL,
		}
		if err := a.Users.UpsertUser(user); err != nil {
			return nil, err
		}
	}

	return identity, nil
}

func bearerToken(r *http.Request) string {
	authz := r.Header.Get("Authorization")
	if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authz, "Bearer ")
}

func stringClaim(claims jwt.MapClaims, key string) string {
	value, _ := claims[key].(string)
	return value
}
