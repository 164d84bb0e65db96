package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/controller"
	"taskmaster/dto"
	"taskmaster/services"
	"taskmaster/store"
)

func UserController(router *gin.RouterGroup, st store.Store) {
	routes := router.Group("/users")
	{
		routes.GET("", func(c *gin.Context) {
			ListUsers(c, st)
		})
		routes.POST("", func(c *gin.Context) {
			CreateUser(c, st)
		})
	}
}

// ListUsers returns the collaborators. The master account is never listed.
func ListUsers(c *gin.Context, st store.Store) {
	users, err := services.ListCollaborators(c.Request.Context(), st)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func CreateUser(c *gin.Context, st store.Store) {
	var request dto.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	id, err := services.CreateCollaborator(c.Request.Context(), st, request.Username, request.Password, request.Name)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}
