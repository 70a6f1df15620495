// Package httperr writes the JSON error body and records the cause on the gin context
// so middleware.ErrorHandler can log it.
package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string) Response {
	resp := Response{Status: status}
	resp.Error.Message = msg
	return resp
}

func Abort(c *gin.Context, status int, err error, msg string) {
	AbortWithDetail(c, status, err, msg, nil)
}

// AbortWithDetail panics on a nil err; every abort must carry its cause.
func AbortWithDetail(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("httperr: abort without an error")
	}

	resp := NewResponse(status, msg)
	resp.Detail = detail

	_ = c.Error(&gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
