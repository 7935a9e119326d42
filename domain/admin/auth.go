package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/storelaunch/launchlist/config"
	"github.com/storelaunch/launchlist/config/router"
	"github.com/storelaunch/launchlist/internal/log"
	apperrors "github.com/storelaunch/launchlist/pkg/errors"
)

// Claims are the JWT claims carried by an admin session token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs and validates admin session tokens.
type TokenService struct {
	secret      []byte
	expireHours int
}

func NewTokenServiceFromEnv() *TokenService {
	expireHours, err := strconv.Atoi(config.GetValueFromEnvironmentVariable("JWT_EXPIRE_HOURS", "24"))
	if err != nil || expireHours <= 0 {
		expireHours = 24
	}

	return NewTokenService(
		config.GetValueFromEnvironmentVariable("JWT_SECRET", ""),
		expireHours,
	)
}

func NewTokenService(secret string, expireHours int) *TokenService {
	return &TokenService{
		secret:      []byte(secret),
		expireHours: expireHours,
	}
}

// Generate creates a signed session token for an admin user.
func (ts *TokenService) Generate(userID, username, role string) (string, time.Time, error) {
	if len(ts.secret) == 0 {
		return "", time.Time{}, apperrors.NewInternalServerError("JWT secret is not configured", nil)
	}

	expiresAt := time.Now().Add(time.Duration(ts.expireHours) * time.Hour)

	claims := Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ts.secret)
	if err != nil {
		return "", time.Time{}, apperrors.NewInternalServerError("unable to sign session token", err)
	}

	return signed, expiresAt, nil
}

// Validate parses a session token and returns its claims.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	if len(ts.secret) == 0 {
		return nil, apperrors.NewInternalServerError("JWT secret is not configured", nil)
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperrors.NewUnauthorizedError("unexpected token signing method", nil)
		}
		return ts.secret, nil
	})
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired session token.", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperrors.NewUnauthorizedError("Invalid or expired session token.", nil)
	}

	return claims, nil
}

// RequireAuth guards a route behind a Bearer session token. Failed checks
// short-circuit with the standard error envelope.
func RequireAuth(tokens *TokenService, logger *log.Logger) router.MiddlewareFunc {
	return func(c *router.RequestContext) {
		header := c.GetHeader("Authorization")

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			abortUnauthorized(c, "Missing or malformed Authorization header.")
			return
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			requestLogger := log.GetLoggerInstanceFromContext(c.Request.Context(), logger)
			requestLogger.Error("Rejected admin request", "path", c.FullPath(), "error", err)
			abortUnauthorized(c, "Invalid or expired session token.")
			return
		}

		c.Set("admin_user_id", claims.UserID)
		c.Set("admin_username", claims.Username)
		c.Next()
	}
}

func abortUnauthorized(c *router.RequestContext, message string) {
	result := router.UnauthorizedResult(message)
	c.AbortWithStatusJSON(result.StatusCode, result.ToJSON())
}
