package middlewares

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/table-order-app/config"
	"github.com/yeremiapane/table-order-app/utils"
)

// AdminOnly menjaga surface admin. Saat ADMIN_ROLE_ENFORCED aktif, hanya
// user dengan flag is_admin yang lolos; default-nya setiap user
// terautentikasi dianggap staff.
// TODO: hilangkan mode permisif setelah ada proses onboarding staff.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, fmt.Errorf("unauthorized"))
			c.Abort()
			return
		}

		if config.Get().AdminRoleEnforced && !user.IsAdmin {
			utils.RespondError(c, http.StatusForbidden, fmt.Errorf("admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
