//go:build unit

package httperr_test

import (
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbortWithDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records the cause as a public error carrying the response", func(t *testing.T) {
		rec := nethttptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)

		httperr.AbortWithDetail(c, http.StatusBadRequest, errs.ErrValidation, "Invalid request", []string{"RoomID: required"})

		require.Len(t, c.Errors, 1)
		last := c.Errors.Last()
		assert.True(t, last.IsType(gin.ErrorTypePublic))
		assert.ErrorIs(t, last.Err, errs.ErrValidation)

		resp, ok := last.Meta.(httperr.Response)
		require.True(t, ok, "meta should hold the rendered response, got %T", last.Meta)
		assert.Equal(t, http.StatusBadRequest, resp.Status)
		assert.Equal(t, "Invalid request", resp.Error.Message)
		assert.Equal(t, []string{"RoomID: required"}, resp.Detail)

		assert.True(t, c.IsAborted())
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Invalid request"},"detail":["RoomID: required"]}`, rec.Body.String())
	})

	t.Run("server errors keep their status in the recorded response", func(t *testing.T) {
		c, _ := gin.CreateTestContext(nethttptest.NewRecorder())

		httperr.Abort(c, http.StatusInternalServerError, errs.New("disk full"), "Error saving reservation")

		resp, ok := c.Errors.Last().Meta.(httperr.Response)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, resp.Status)
		assert.Nil(t, resp.Detail)
	})

	t.Run("a nil cause panics", func(t *testing.T) {
		c, _ := gin.CreateTestContext(nethttptest.NewRecorder())

		assert.Panics(t, func() { httperr.Abort(c, http.StatusBadRequest, nil, "Invalid request") })
	})
}
