package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/table-order-app/models"
	"github.com/yeremiapane/table-order-app/utils"
)

// AuthMiddleware memvalidasi Bearer token dan me-resolve user-nya.
// Token yang malformed, kadaluarsa, atau phone-nya tidak lagi dikenal
// semuanya berakhir 401.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.Where("phone = ?", claims.Phone).First(&user).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("could not validate credentials"))
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("user_id", user.ID)
		c.Set("phone", user.Phone)

		c.Next()
	}
}

// CurrentUser mengambil user yang sudah diset oleh AuthMiddleware.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
