package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/controller"
	"taskmaster/dto"
	"taskmaster/services"
	"taskmaster/store"
)

func FeedbackController(router *gin.RouterGroup, st store.Store) {
	routes := router.Group("/feedback")
	{
		routes.GET("/:userId", func(c *gin.Context) {
			ListFeedback(c, st)
		})
		routes.POST("", func(c *gin.Context) {
			CreateFeedback(c, st)
		})
	}
}

func ListFeedback(c *gin.Context, st store.Store) {
	userID, ok := controller.ParamID(c, "userId")
	if !ok {
		return
	}
	notes, err := services.ListFeedback(c.Request.Context(), st, userID)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func CreateFeedback(c *gin.Context, st store.Store) {
	var request dto.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	if _, err := services.CreateFeedback(c.Request.Context(), st, request.UserID.Int64(), request.Content, request.Date); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
