package middleware

import (
	"log/slog"
	"net/http"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

// ErrorHandler logs server-side failures recorded by httperr and renders the last public
// error when the handler has not written a body yet.
func ErrorHandler(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			resp, ok := ge.Meta.(httperr.Response)
			if !ok || resp.Status < http.StatusInternalServerError {
				continue
			}
			logger.Error("request failed",
				"request_id", GetRequestID(c),
				"status", resp.Status,
				"error", ge.Err.Error(),
				"stack", errs.ExtractStackLines(ge.Err, stackLines))
		}

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
		}
	}
}

// CustomRecovery must be installed first so it also covers the other middleware.
func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
			}
		}()
		c.Next()
	}
}
