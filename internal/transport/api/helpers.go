package api

import (
	"github.com/gin-gonic/gin"

	"github.com/danilsonvss/payledger/internal/domain"
	"github.com/danilsonvss/payledger/internal/transport/api/middlewares"
)

// getUserIDFromContext возвращает id текущего юзера из контекста gin. Значение кладет auth middleware,
// поэтому на роутах без AuthRequired вернется ноль.
func getUserIDFromContext(c *gin.Context) int64 {
	id, _ := c.Get(middlewares.CurrentUserIDKey)
	userID, _ := id.(int64)
	return userID
}

func getUserRoleFromContext(c *gin.Context) domain.UserRole {
	role, _ := c.Get(middlewares.CurrentUserRoleKey)
	userRole, _ := role.(domain.UserRole)
	return userRole
}

// isPlatform проверяет что текущий юзер имеет платформенную роль.
func isPlatform(c *gin.Context) bool {
	return getUserRoleFromContext(c) == domain.RolePlatform
}
