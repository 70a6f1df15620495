package api

import (
	"net/http"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Book a room
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.BookReservationRequest true "Booking request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	var req reqdto.BookReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, err, msgInvalidRequest, bindingDetail(err))
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, validationMessage(err))
		return
	}

	view, err := h.cmds.Book(c.Request.Context(), params)
	if err != nil {
		switch {
		case errs.Is(err, errs.ErrRoomNotFound):
			httperr.Abort(c, http.StatusNotFound, err, msgRoomNotFound)
		case errs.Is(err, errs.ErrRoomUnavailable):
			httperr.Abort(c, http.StatusConflict, err, msgRoomUnavailable)
		default:
			httperr.Abort(c, http.StatusInternalServerError, err, msgSaveFailed)
		}
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.Header("Location", "/api/reservations/"+resp.ID)
	c.JSON(http.StatusCreated, resp)
}

// @Summary List reservations
// @Tags reservations
// @Produce json
// @Success 200 {array} resdto.ReservationResponse
// @Failure 500 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	views, err := h.q.ListAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	resp, err := resdto.FromReservationViews(views)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID, matched case-insensitively"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	view, err := h.q.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errs.Is(err, errs.ErrReservationNotFound) {
			httperr.Abort(c, http.StatusNotFound, err, msgReservationNotFound)
			return
		}
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	resp, err := resdto.FromReservationView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel answers 404 for unknown ids; a miss is not a server error.
//
// @Summary Cancel reservation
// @Tags reservations
// @Param id path string true "Reservation ID, matched case-insensitively"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations/{id} [delete]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.cmds.Cancel(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgUpdateFailed)
		return
	}
	if !removed {
		httperr.Abort(c, http.StatusNotFound, errs.Wrapf(errs.ErrReservationNotFound, "id %q", id), msgReservationNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}
