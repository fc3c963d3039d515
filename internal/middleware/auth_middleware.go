package middleware

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ArowuTest/leadcapture-backend/internal/config"
	"github.com/ArowuTest/leadcapture-backend/internal/models"
	"github.com/ArowuTest/leadcapture-backend/pkg/jwt"
	"github.com/ArowuTest/leadcapture-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// UserHeader is set by the upstream auth layer to a JSON identity
	UserHeader = "user"

	identityKey  = "identity"
	bearerSchema = "Bearer "
)

// IdentityMiddleware resolves the caller identity without rejecting the
// request. Handlers that need an identity check IdentityFromContext.
// The upstream "user" header wins; a bearer token is only consulted when a
// JWT secret is configured.
func IdentityMiddleware(cfg *config.Config) gin.HandlerFunc {
	var jwtSecret string
	if cfg != nil {
		jwtSecret = cfg.JWT.Secret
	}

	return func(c *gin.Context) {
		identity := parseUserHeader(c.GetHeader(UserHeader))
		if identity == nil && jwtSecret != "" {
			identity = parseBearer(c, jwtSecret)
		}
		if identity != nil {
			c.Set(identityKey, identity)
		}
		c.Next()
	}
}

// IdentityFromContext returns the identity resolved by IdentityMiddleware
func IdentityFromContext(c *gin.Context) *models.Identity {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil
	}
	identity, _ := v.(*models.Identity)
	return identity
}

// parseUserHeader decodes the upstream identity. Any malformed value is
// treated as no identity.
func parseUserHeader(header string) *models.Identity {
	header = strings.TrimSpace(header)
	if header == "" {
		return nil
	}

	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(header), &raw); err != nil {
		return nil
	}
	return identityFromClaims(raw)
}

func parseBearer(c *gin.Context, secret string) *models.Identity {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, bearerSchema) {
		return nil
	}
	tokenString := strings.TrimSpace(authHeader[len(bearerSchema):])

	claims, err := jwt.ValidateToken(tokenString, secret)
	if err != nil {
		logger.FromContext(c.Request.Context()).Debug("Bearer token rejected", zap.Error(err))
		return nil
	}
	return identityFromClaims(claims)
}

// identityFromClaims accepts numeric company IDs, which some upstream
// producers emit.
func identityFromClaims(claims map[string]interface{}) *models.Identity {
	identity := &models.Identity{
		Role:      claimString(claims["role"]),
		CompanyID: claimString(claims["companyId"]),
		UserID:    claimString(claims["userId"]),
	}
	if identity.UserID == "" {
		identity.UserID = claimString(claims["sub"])
	}
	if identity.Role == "" && identity.CompanyID == "" {
		return nil
	}
	return identity
}

func claimString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strings.TrimSpace(fmt.Sprintf("%.0f", t))
	case map[string]interface{}, []interface{}:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
