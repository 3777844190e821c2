package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gull-Stack/love-rescue-sub003/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusBadRequest, "user_lookup_failed", err)
		return
	}
	RespondOK(c, gin.H{"me": me})
}
