package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func DocsController(router *gin.RouterGroup, appURL string) {
	router.GET("/docs", func(c *gin.Context) {
		c.JSON(http.StatusOK, OpenAPI(appURL))
	})
}

func idParam(name string) gin.H {
	return gin.H{"name": name, "in": "path", "required": true, "schema": gin.H{"type": "integer"}}
}

func jsonBody(schema gin.H) gin.H {
	return gin.H{"required": true, "content": gin.H{"application/json": gin.H{"schema": schema}}}
}

func object(required []string, props gin.H) gin.H {
	return gin.H{"type": "object", "required": required, "properties": props}
}

func ok(description string) gin.H {
	return gin.H{"200": gin.H{"description": description}}
}

var str = gin.H{"type": "string"}
var integer = gin.H{"type": "integer"}
var date = gin.H{"type": "string", "format": "date"}

// OpenAPI describes the HTTP surface. serverURL is advertised as the only
// server.
func OpenAPI(serverURL string) gin.H {
	return gin.H{
		"openapi": "3.0.0",
		"info":    gin.H{"title": "TaskMaster Pro API", "version": "1.0.0"},
		"servers": []gin.H{{"url": serverURL}},
		"components": gin.H{
			"securitySchemes": gin.H{
				"ApiKeyAuth": gin.H{"type": "apiKey", "in": "header", "name": "X-API-Key"},
			},
		},
		"security": []gin.H{{"ApiKeyAuth": []string{}}},
		"paths": gin.H{
			"/api/login": gin.H{
				"post": gin.H{
					"summary":     "Check credentials",
					"requestBody": jsonBody(object([]string{"username", "password"}, gin.H{"username": str, "password": str})),
					"responses": gin.H{
						"200": gin.H{"description": "The account, without password"},
						"401": gin.H{"description": "Invalid credentials"},
					},
				},
			},
			"/api/users": gin.H{
				"get": gin.H{"summary": "List collaborators", "responses": ok("Collaborator accounts")},
				"post": gin.H{
					"summary":     "Create a collaborator",
					"requestBody": jsonBody(object([]string{"username", "password", "name"}, gin.H{"username": str, "password": str, "name": str})),
					"responses":   ok("The new id"),
				},
			},
			"/api/tasks": gin.H{
				"get": gin.H{
					"summary": "List tasks",
					"parameters": []gin.H{
						{"name": "userId", "in": "query", "schema": integer},
						{"name": "role", "in": "query", "schema": gin.H{"type": "string", "enum": []string{"master", "collaborator"}}},
					},
					"responses": ok("Every task for a master, the caller's own otherwise"),
				},
				"post": gin.H{
					"summary": "Create a task",
					"requestBody": jsonBody(object([]string{"title", "assigned_to", "due_date"}, gin.H{
						"title": str, "description": str, "assigned_to": integer, "due_date": date,
					})),
					"responses": ok("The new id"),
				},
			},
			"/api/tasks/{id}": gin.H{
				"patch": gin.H{
					"summary":    "Change a task's status",
					"parameters": []gin.H{idParam("id")},
					"requestBody": jsonBody(object([]string{"status"}, gin.H{
						"status":         gin.H{"type": "string", "enum": []string{"pending", "completed", "failed"}},
						"failure_reason": str,
					})),
					"responses": gin.H{
						"200": gin.H{"description": "Updated"},
						"404": gin.H{"description": "Unknown task"},
					},
				},
			},
			"/api/time-logs/{userId}": gin.H{
				"get": gin.H{
					"summary":    "Latest time log entries, newest first",
					"parameters": []gin.H{idParam("userId")},
					"responses":  ok("Up to 50 entries"),
				},
			},
			"/api/time-logs/{userId}/status": gin.H{
				"get": gin.H{
					"summary":    "Derived work status",
					"parameters": []gin.H{idParam("userId")},
					"responses":  ok("idle, working, paused or ended"),
				},
			},
			"/api/time-logs": gin.H{
				"post": gin.H{
					"summary": "Record a time log event",
					"requestBody": jsonBody(object([]string{"userId", "type"}, gin.H{
						"userId": integer,
						"type":   gin.H{"type": "string", "enum": []string{"start", "pause", "resume", "end"}},
					})),
					"responses": ok("Recorded"),
				},
			},
			"/api/feedback/{userId}": gin.H{
				"get": gin.H{
					"summary":    "Feedback notes, newest first",
					"parameters": []gin.H{idParam("userId")},
					"responses":  ok("Notes"),
				},
			},
			"/api/feedback": gin.H{
				"post": gin.H{
					"summary":     "Write a feedback note",
					"requestBody": jsonBody(object([]string{"userId", "content", "date"}, gin.H{"userId": integer, "content": str, "date": date})),
					"responses":   ok("Recorded"),
				},
			},
		},
	}
}
