package task

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/controller"
	"taskmaster/dto"
	"taskmaster/model"
	"taskmaster/services"
	"taskmaster/store"
)

func TaskController(router *gin.RouterGroup, st store.Store, lc services.Lifecycle) {
	routes := router.Group("/tasks")
	{
		routes.GET("", func(c *gin.Context) {
			ListTasks(c, st)
		})
		routes.POST("", func(c *gin.Context) {
			CreateTask(c, st)
		})
		routes.PATCH("/:id", func(c *gin.Context) {
			UpdateTaskStatus(c, st, lc)
		})
	}
}

// ListTasks returns every task (with assignee names) for a master or when no
// userId is given, otherwise only the caller's own tasks.
func ListTasks(c *gin.Context, st store.Store) {
	var query dto.TaskListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		controller.BadRequest(c, err)
		return
	}

	ctx := c.Request.Context()
	var (
		tasks []model.Task
		err   error
	)
	if query.Role == model.RoleMaster || query.UserID == "" {
		tasks, err = services.ListAllTasks(ctx, st)
	} else {
		userID, parseErr := controller.ParseID(query.UserID)
		if parseErr != nil {
			controller.BadRequest(c, parseErr)
			return
		}
		tasks, err = services.ListTasksForUser(ctx, st, userID)
	}
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func CreateTask(c *gin.Context, st store.Store) {
	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	id, err := services.CreateTask(c.Request.Context(), st, services.NewTask{
		Title:       request.Title,
		Description: request.Description,
		AssignedTo:  request.AssignedTo.Int64(),
		DueDate:     request.DueDate,
	})
	if err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.IDResponse{ID: id})
}

func UpdateTaskStatus(c *gin.Context, st store.Store, lc services.Lifecycle) {
	id, ok := controller.ParamID(c, "id")
	if !ok {
		return
	}
	var request dto.UpdateTaskStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		controller.BadRequest(c, err)
		return
	}

	if err := services.UpdateTaskStatus(c.Request.Context(), st, lc, id, request.Status, request.FailureReason); err != nil {
		controller.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
