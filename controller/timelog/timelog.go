package timelog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/controller"
	"taskmaster/dto"
	"taskmaster/services"
	"taskmaster/store"
)

func TimeLogController(router *gin.RouterGroup, st store.Store, lc services.Lifecycle) {
	routes := router.Group("/time-logs")
	{
		routes.GET("/:userId", func(c *gin.Context) {
			ListTimeLogs(c, st)
		})
		routes.GET("/:userId/status", func(c *gin.Context) {
			GetStatus(c, st)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTimeLog(c, st, lc)
		})
	}
}

// ListTimeLogs returns the most recent events for a user, newest first.
func ListTimeLogs(c *gin.Context, st store.Store) {
	userID, ok := controller.ParamID(c, "userId")
	if !ok {
		return
	}
	logs, err := services.ListTimeLogs(c.Request.Context(), st, userID, services.TimeLogLimit)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

func GetStatus(c *gin.Context, st store.Store) {
	userID, ok := controller.ParamID(c, "userId")
	if !ok {
		return
	}
	status, last, err := services.CurrentStatus(c.Request.Context(), st, userID)
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TimeLogStatusResponse{Status: status, LastEvent: last})
}

func CreateTimeLog(c *gin.Context, st store.Store, lc services.Lifecycle) {
	var request dto.CreateTimeLogRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	if err := services.AppendTimeLog(c.Request.Context(), st, lc, request.UserID.Int64(), request.Type); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
