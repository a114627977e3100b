//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"hotel-backend/internal/handler/api"
	resdto "hotel-backend/internal/handler/dto/response"
	"hotel-backend/internal/infra"
	"hotel-backend/internal/pkg/errs"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"
	"hotel-backend/internal/usecase/shared"
	"hotel-backend/tests/common/builder"
	"hotel-backend/tests/common/httptest"
	"hotel-backend/tests/common/testutil"
	commandsmock "hotel-backend/tests/mock/commands"
	queriesmock "hotel-backend/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RoomHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockRoomCommands
	mockQueries  *queriesmock.MockRoomQueries
	mockHotels   *queriesmock.MockHotelQueries
	builder      *builder.RoomBuilder
	actor        shared.Actor
}

func (s *RoomHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockRoomCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockRoomQueries(s.mockCtrl)
	s.mockHotels = queriesmock.NewMockHotelQueries(s.mockCtrl)
	h := api.NewRoomHandler(s.mockCommands, s.mockQueries, s.mockHotels)

	s.builder = builder.NewRoomBuilder()
	s.actor = staffActor(s.builder.HotelID)

	s.router.GET("/hotels", h.ListHotels)
	s.router.GET("/hotels/:hotelId/categories", h.ListCategories)
	s.router.POST("/hotels/:hotelId/rooms", withActor(&s.actor, h.Create))
	s.router.GET("/hotels/:hotelId/rooms", h.ListByHotel)
	s.router.GET("/rooms/:id", h.Get)
	s.router.PATCH("/rooms/:id", withActor(&s.actor, h.Update))
	s.router.DELETE("/rooms/:id", withActor(&s.actor, h.Delete))
}

func (s *RoomHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRoomHandlerSuite(t *testing.T) {
	suite.Run(t, new(RoomHandlerTestSuite))
}

func (s *RoomHandlerTestSuite) createBody() map[string]any {
	return map[string]any{
		"category_id":    s.builder.CategoryID.String(),
		"number":         s.builder.Number,
		"description":    s.builder.Description,
		"area_sqm":       s.builder.AreaSqm,
		"out_of_service": false,
	}
}

func (s *RoomHandlerTestSuite) TestListHotels() {
	s.Run("success: returns every hotel", func() {
		hotels := []*queries.HotelView{
			builder.NewHotelBuilder().BuildView(),
			builder.NewHotelBuilder().WithName("Hotel Sur").BuildView(),
		}
		s.mockHotels.EXPECT().ListHotels(gomock.Any()).Return(hotels, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels", nil, "")

		var response []resdto.HotelResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal("Hotel Sur", response[1].Name)
	})
}

func (s *RoomHandlerTestSuite) TestListCategories() {
	url := "/hotels/" + s.builder.HotelID.String() + "/categories"

	s.Run("success: returns the hotel's categories", func() {
		s.mockHotels.EXPECT().ListCategories(gomock.Any(), s.builder.HotelID).
			Return([]*queries.CategoryView{{ID: s.builder.CategoryID, HotelID: s.builder.HotelID, Name: "Double", PriceCents: 12000}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response []resdto.CategoryResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(int64(12000), response[0].PriceCents)
	})

	s.Run("error: 404 on unknown hotel", func() {
		s.mockHotels.EXPECT().ListCategories(gomock.Any(), s.builder.HotelID).Return(nil, queries.ErrHotelNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Hotel not found")
	})
}

func (s *RoomHandlerTestSuite) TestCreate() {
	url := "/hotels/" + s.builder.HotelID.String() + "/rooms"

	s.Run("success: returns 201 with the room", func() {
		view := s.builder.BuildView()
		s.mockCommands.EXPECT().CreateRoom(gomock.Any(), s.builder.HotelID, commands.CreateRoomRequest{
			CategoryID:  s.builder.CategoryID,
			Number:      s.builder.Number,
			Description: s.builder.Description,
			AreaSqm:     s.builder.AreaSqm,
		}, s.actor).Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/rooms/" + view.ID.String()})
		s.Equal(view.Number, response.Number)
		s.Equal("Double", response.CategoryName)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(map[string]any)
		}{
			{"missing number", testutil.Field("number", nil)},
			{"zero number", testutil.Field("number", 0)},
			{"missing description", testutil.Field("description", nil)},
			{"negative area", testutil.Field("area_sqm", -1)},
			{"malformed category", testutil.Field("category_id", "nope")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := s.createBody()
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{"number taken", commands.ErrRoomNumberTaken, http.StatusConflict, "Room number already taken"},
			{"foreign category", commands.ErrCategoryNotFound, http.StatusNotFound, "Category not found"},
			{"other hotel", commands.ErrAccessDenied, http.StatusForbidden, "Access denied"},
			{"invalid room", commands.ErrInvalidRoom, http.StatusBadRequest, "Invalid room"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateRoom(gomock.Any(), s.builder.HotelID, gomock.Any(), s.actor).
					Return(uuid.Nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.createBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *RoomHandlerTestSuite) TestGetAndList() {
	view := s.builder.BuildView()

	s.Run("success: get returns the room", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+view.ID.String(), nil, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: get 404 when missing", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rooms/"+view.ID.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})

	s.Run("success: list returns the hotel's rooms", func() {
		s.mockQueries.EXPECT().ListByHotel(gomock.Any(), s.builder.HotelID).
			Return([]*queries.RoomView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/hotels/"+s.builder.HotelID.String()+"/rooms", nil, "")

		var response []resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
	})
}

func (s *RoomHandlerTestSuite) TestUpdate() {
	view := s.builder.BuildView()
	url := "/rooms/" + view.ID.String()

	s.Run("success: toggles out of service", func() {
		outOfService := true
		updated := *view
		updated.OutOfService = true
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), view.ID, commands.UpdateRoomRequest{OutOfService: &outOfService}, s.actor).
			Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(&updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"out_of_service": true}, "")

		var response resdto.RoomResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.OutOfService)
	})

	s.Run("error: 404 when missing", func() {
		s.mockCommands.EXPECT().UpdateRoom(gomock.Any(), view.ID, gomock.Any(), s.actor).Return(commands.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"description": "Suite"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Room not found")
	})
}

func (s *RoomHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/rooms/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().DeleteRoom(gomock.Any(), id, s.actor).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 while reservations reference the room", func() {
		referenced := infra.WrapRepoErr("failed to delete room", errors.New("fk"), infra.KindForeignKeyViolated)
		s.mockCommands.EXPECT().DeleteRoom(gomock.Any(), id, s.actor).
			Return(errs.Mark(referenced, commands.ErrDeleteFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "still referenced")
	})
}
