package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	userRepo "nextstop/database/repository/user"
	"nextstop/models"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// PrincipalKey is the gin context key under which the authenticated
// account is stored by the auth middlewares.
const PrincipalKey = "principal"

// GetPrincipal retrieves the authenticated principal set by the auth
// middlewares. The boolean is false when no principal is present.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	val, exists := c.Get(PrincipalKey)
	if !exists {
		return models.Principal{}, false
	}
	principal, ok := val.(models.Principal)
	return principal, ok
}

// JWTAuthUserMiddleware authenticates passenger requests. It validates the
// bearer token, verifies the cached token hash in Redis (falling back to a
// database account lookup on cache miss) and stores the principal in the
// request context.
func JWTAuthUserMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		ctx := context.Background()

		claims, tokenString, ok := bearerClaims(c)
		if !ok {
			return
		}
		if claims.Role != models.RoleUser {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access restricted to passengers",
			})
			return
		}

		principal := models.Principal{
			Username: claims.Username,
			Email:    claims.Email,
			Role:     claims.Role,
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + claims.Username

		// Get the dedicated auth cache client.
		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		}

		// Attempt to retrieve the token hash from Redis if cache is enabled.
		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
					// Refresh the TTL and continue.
					_ = authCache.Expire(ctx, cacheKey, time.Hour).Err()
					c.Set(PrincipalKey, principal)
					c.Next()
					return
				}
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
				})
				return
			} else if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v. Falling back to DB lookup.", err)
			}
		}

		// Cache miss: confirm the account still exists.
		usr, err := users.GetByUsername(claims.Username)
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication error",
			})
			return
		}

		if cacheEnabled {
			_ = authCache.Set(ctx, cacheKey, computedHash, time.Hour).Err()
		}

		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// bearerClaims extracts and validates the bearer token from the request,
// aborting with 401 on failure. It returns the claims and the raw token.
func bearerClaims(c *gin.Context) (*utils.TokenClaims, string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Insufficient authorization",
		})
		return nil, "", false
	}
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Insufficient authorization",
		})
		return nil, "", false
	}

	claims, err := utils.ExtractClaimsFromToken(tokenString)
	if err != nil || claims.Username == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "Insufficient authorization",
		})
		return nil, "", false
	}
	return claims, tokenString, true
}
