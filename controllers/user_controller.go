package controllers

import (
	"net/http"

	"store-api/services"

	"github.com/gin-gonic/gin"
)

// UserController handles the admin account views.
type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers handles GET /users?page= (admin)
func (uc *UserController) GetUsers(c *gin.Context) {
	page, svcErr := uc.userService.GetUsers(c.Request.Context(), parsePage(c))
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetUser handles GET /users/:id (admin)
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, svcErr := uc.userService.GetUser(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	c.JSON(http.StatusOK, profile)
}
