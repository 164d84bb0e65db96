package diagnostics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/middleware"
	"taskmaster/services"
	"taskmaster/store"
)

func DebugDBController(router *gin.RouterGroup, st store.Store) {
	router.GET("/debug-db", func(c *gin.Context) {
		DebugDB(c, st)
	})
}

// DebugDB reports which backend is connected, its tables and whether the
// master account exists. Failures still answer with a JSON body carrying
// the driver's message.
func DebugDB(c *gin.Context, st store.Store) {
	report, err := services.CheckDatabase(c.Request.Context(), st)
	if err != nil {
		middleware.Logger(c).Error("database check failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Database check failed",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"database":  report.Database,
		"tables":    report.Tables,
		"adminUser": report.AdminUser,
	})
}
