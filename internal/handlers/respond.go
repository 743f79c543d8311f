package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// LogAndRespondError logs the underlying error and writes a generic
// message to the client.
func LogAndRespondError(c *gin.Context, status int, err error, message string) {
	slog.Error(message,
		slog.String("path", c.Request.URL.Path),
		slog.Any("error", err),
	)
	RespondError(c, status, message)
}

// parseID parses a path id parameter. The second return is false when the
// value is not a positive integer.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// parsePageQuery reads 1-based page/size query params with defaults.
func parsePageQuery(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	return page, size
}

func expirySeconds(seconds int64) time.Duration {
	return time.Duration(seconds) * time.Second
}
