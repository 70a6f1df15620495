package api

import (
	"net/http"
	"strconv"

	reqdto "hotel-reservation/internal/handler/dto/request"
	resdto "hotel-reservation/internal/handler/dto/response"
	"hotel-reservation/internal/handler/httperr"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	rooms        queries.RoomQueries
	reservations queries.ReservationQueries
}

func NewRoomHandler(rooms queries.RoomQueries, reservations queries.ReservationQueries) *RoomHandler {
	return &RoomHandler{rooms: rooms, reservations: reservations}
}

// List returns the whole catalog in catalog order.
//
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Failure 500 {object} httperr.Response
// @Router /api/rooms [get]
func (h *RoomHandler) List(c *gin.Context) {
	views, err := h.rooms.ListRooms(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	h.respondRooms(c, views)
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room number"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.Abort(c, http.StatusBadRequest, errs.Mark(errs.New("invalid room id"), errs.ErrValidation), "Invalid room id")
		return
	}

	view, err := h.rooms.GetRoom(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, errs.ErrRoomNotFound) {
			httperr.Abort(c, http.StatusNotFound, err, msgRoomNotFound)
			return
		}
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}

	resp, err := resdto.FromRoomView(view)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List room categories
// @Tags rooms
// @Produce json
// @Success 200 {object} resdto.CategoriesResponse
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/categories [get]
func (h *RoomHandler) Categories(c *gin.Context) {
	categories, err := h.rooms.ListCategories(c.Request.Context())
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resdto.NewCategoriesResponse(categories))
}

// Available lists the rooms of a category free for the whole stay.
//
// @Summary Search available rooms
// @Tags rooms
// @Produce json
// @Param category query string false "Room category, any when empty"
// @Param checkIn query string true "Check-in date (YYYY-MM-DD)"
// @Param checkOut query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {array} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/rooms/available [get]
func (h *RoomHandler) Available(c *gin.Context) {
	var query reqdto.SearchRoomsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, msgInvalidRequest)
		return
	}

	period, err := query.Period()
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, err, validationMessage(err))
		return
	}

	views, err := h.reservations.SearchAvailable(c.Request.Context(), query.CategoryOrAny(), period)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	h.respondRooms(c, views)
}

func (h *RoomHandler) respondRooms(c *gin.Context, views []*queries.RoomView) {
	resp, err := resdto.FromRoomViews(views)
	if err != nil {
		httperr.Abort(c, http.StatusInternalServerError, err, msgInternal)
		return
	}
	c.JSON(http.StatusOK, resp)
}
