package api

import (
	"net/http"

	reqdto "hotel-backend/internal/handler/dto/request"
	resdto "hotel-backend/internal/handler/dto/response"
	"hotel-backend/internal/handler/httperr"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	cmds   commands.RoomCommands
	q      queries.RoomQueries
	hotels queries.HotelQueries
}

func NewRoomHandler(cmds commands.RoomCommands, q queries.RoomQueries, hotels queries.HotelQueries) *RoomHandler {
	return &RoomHandler{cmds: cmds, q: q, hotels: hotels}
}

// @Summary List hotels
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.HotelResponse
// @Router /hotels [get]
func (h *RoomHandler) ListHotels(c *gin.Context) {
	views, err := h.hotels.ListHotels(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelViews(views))
}

// @Summary List room categories
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Success 200 {array} resdto.CategoryResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId}/categories [get]
func (h *RoomHandler) ListCategories(c *gin.Context) {
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return
	}
	views, err := h.hotels.ListCategories(c.Request.Context(), hotelID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}

// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Param request body reqdto.CreateRoomRequest true "Room"
// @Success 201 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /hotels/{hotelId}/rooms [post]
func (h *RoomHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return
	}
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	id, err := h.cmds.CreateRoom(c.Request.Context(), hotelID, req.ToCommand(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load room", nil)
		return
	}
	c.Header("Location", "/api/rooms/"+id.String())
	c.JSON(http.StatusCreated, resdto.FromRoomView(view))
}

// @Summary List hotel rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Success 200 {array} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId}/rooms [get]
func (h *RoomHandler) ListByHotel(c *gin.Context) {
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return
	}
	views, err := h.q.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} resdto.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Update room
// @Description Changes the description and/or the out-of-service flag
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.UpdateRoomRequest true "Fields to change"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	if err := h.cmds.UpdateRoom(c.Request.Context(), id, req.ToCommand(), actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Delete room
// @Description Fails with 409 while reservations reference the room
// @Tags rooms
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms/{id} [delete]
func (h *RoomHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteRoom(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
