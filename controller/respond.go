// Package controller holds the helpers shared by the resource controllers in
// its subpackages.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"taskmaster/middleware"
	"taskmaster/services"
)

var errInvalidID = errors.New("id must be a positive integer")

// Fail writes the response for a service error. Client mistakes get their
// message back; anything unexpected is logged and reported as a 500.
func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUsernameTaken),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidLogType),
		errors.Is(err, services.ErrIllegalTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		middleware.Logger(c).Error("request failed", "path", c.FullPath(), "error", err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// BadRequest reports a malformed body, path or query parameter.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// ParamID reads a positive integer path parameter. It writes the 400 itself
// and returns false when the value is unusable.
func ParamID(c *gin.Context, name string) (int64, bool) {
	id, err := ParseID(c.Param(name))
	if err != nil {
		BadRequest(c, err)
		return 0, false
	}
	return id, true
}

func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
