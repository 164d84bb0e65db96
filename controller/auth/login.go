package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/controller"
	"taskmaster/dto"
	"taskmaster/services"
	"taskmaster/store"
)

func LoginController(router *gin.RouterGroup, st store.Store) {
	router.POST("/login", func(c *gin.Context) {
		Login(c, st)
	})
}

// Login checks the credentials and returns the account without its password.
// No session or token is issued.
func Login(c *gin.Context, st store.Store) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	user, err := services.Authenticate(c.Request.Context(), st, request.Username, request.Password)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
