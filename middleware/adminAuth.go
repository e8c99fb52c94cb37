package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	adminRepo "nextstop/database/repository/admin"
	"nextstop/models"
	"nextstop/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthAdminMiddleware authenticates administrator requests. The flow
// mirrors the passenger middleware but requires the admin role and an
// active admin account.
func JWTAuthAdminMiddleware(admins adminRepo.AdminRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
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
		if claims.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Access restricted to administrators",
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

		authCache := utils.GetAuthCacheClient()
		cacheEnabled := authCache != nil
		if !cacheEnabled {
			log.Printf("WARNING: Auth cache client not available. Falling back to DB lookup.")
		}

		if cacheEnabled {
			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				if cachedHash == computedHash {
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

		// Cache miss: the account must still exist and be active. The admin
		// repository only returns active accounts.
		adm, err := admins.GetByUsername(claims.Username)
		if err != nil || adm == nil {
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
