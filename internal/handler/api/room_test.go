//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/handler/api"
	resdto "hotel-reservation/internal/handler/dto/response"
	queriesmock "hotel-reservation/internal/mock/queries"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/testutil/builder"
	"hotel-reservation/internal/testutil/httptest"
	"hotel-reservation/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockRooms        *queriesmock.MockRoomQueries
	mockReservations *queriesmock.MockReservationQueries
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockRooms, s.mockReservations)

	s.router.GET("/api/rooms", h.List)
	s.router.GET("/api/rooms/categories", h.Categories)
	s.router.GET("/api/rooms/available", h.Available)
	s.router.GET("/api/rooms/:id", h.Get)
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func scenarioViews() []*queries.RoomView {
	return []*queries.RoomView{
		builder.NewRoomBuilder().BuildView(),
		builder.NewRoomBuilder().WithID(201).WithCategory("Deluxe").WithPrice(3500).BuildView(),
	}
}

func (s *RoomHandlerTestSuite) TestList() {
	s.mockRooms.EXPECT().ListRooms(gomock.Any()).Return(scenarioViews(), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms", nil)

	var body []resdto.RoomResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]resdto.RoomResponse{
		{ID: 101, Category: "Standard", PricePerNight: 2000},
		{ID: 201, Category: "Deluxe", PricePerNight: 3500},
	}, body)
}

func (s *RoomHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		s.mockRooms.EXPECT().GetRoom(gomock.Any(), 201).Return(scenarioViews()[1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/201", nil)

		var body resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Deluxe", body.Category)
	})

	s.Run("error: unknown room", func() {
		s.mockRooms.EXPECT().GetRoom(gomock.Any(), 999).Return(nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/999", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found.")
	})

	s.Run("error: non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/abc", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid room id")
	})
}

func (s *RoomHandlerTestSuite) TestCategories() {
	s.mockRooms.EXPECT().ListCategories(gomock.Any()).Return([]string{"Standard", "Deluxe", "Suite"}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/categories", nil)

	var body resdto.CategoriesResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal([]string{"Any", "Standard", "Deluxe", "Suite"}, body.Categories)
}

func (s *RoomHandlerTestSuite) TestAvailable() {
	s.Run("success: category defaults to Any", func() {
		s.mockReservations.EXPECT().SearchAvailable(gomock.Any(), "Any", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, p reservation.StayPeriod) ([]*queries.RoomView, error) {
				s.Equal("2024-06-01", p.CheckIn().String())
				s.Equal("2024-06-03", p.CheckOut().String())
				return scenarioViews()[1:], nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/available?checkIn=2024-06-01&checkOut=2024-06-03", nil)

		var body []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(201, body[0].ID)
	})

	s.Run("success: category is passed through", func() {
		s.mockReservations.EXPECT().SearchAvailable(gomock.Any(), "deluxe", gomock.Any()).Return([]*queries.RoomView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/available?category=deluxe&checkIn=2024-06-01&checkOut=2024-06-03", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})

	cases := []struct {
		name  string
		query string
		msg   string
	}{
		{name: "missing check-out", query: "?checkIn=2024-06-01", msg: "Please select both Check-In and Check-Out dates."},
		{name: "missing both", query: "", msg: "Please select both Check-In and Check-Out dates."},
		{name: "bad date", query: "?checkIn=2024-13-01&checkOut=2024-06-03", msg: "Please select valid dates."},
		{name: "inverted", query: "?checkIn=2024-06-03&checkOut=2024-06-01", msg: "Check-Out must be after Check-In."},
		{name: "same day", query: "?checkIn=2024-06-01&checkOut=2024-06-01", msg: "Check-Out must be after Check-In."},
	}
	for _, tc := range cases {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/rooms/available"+tc.query, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
		})
	}
}
