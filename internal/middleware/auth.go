package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/portfolio-api/internal/models"
	"github.com/yukikurage/portfolio-api/internal/repository"
	"github.com/yukikurage/portfolio-api/internal/response"
	"github.com/yukikurage/portfolio-api/internal/token"
	"gorm.io/gorm"
)

// contextKeyAccount is where the resolved account is stored in the Gin
// context for handlers running behind RequireAuth.
const contextKeyAccount = "account"

// RequireAuth returns the bearer-token gate applied to protected
// routes. No token yields 401; a token that fails signature or expiry
// checks yields 403; a valid token whose account no longer exists
// yields 404; anything unexpected yields 500. On success the account
// record is attached to the context.
func RequireAuth(secret string, accounts repository.AccountRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		fields := strings.Fields(c.GetHeader("Authorization"))
		if len(fields) < 2 {
			response.Unauthorized(c, "Access denied")
			c.Abort()
			return
		}

		claims, err := token.Parse(secret, fields[1])
		if err != nil {
			response.Forbidden(c, "Invalid token")
			c.Abort()
			return
		}

		account, err := accounts.FindByID(claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.NotFound(c, "User not found")
			} else {
				response.InternalError(c, "Failed to authenticate", err)
			}
			c.Abort()
			return
		}

		c.Set(contextKeyAccount, account)
		c.Next()
	}
}

// GetAccount retrieves the authenticated account from the context.
func GetAccount(c *gin.Context) (*models.Account, bool) {
	value, exists := c.Get(contextKeyAccount)
	if !exists {
		return nil, false
	}

	account, ok := value.(*models.Account)
	if !ok {
		return nil, false
	}
	return account, true
}
