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

type CustomerHandler struct {
	cmds commands.CustomerCommands
	q    queries.CustomerQueries
}

func NewCustomerHandler(cmds commands.CustomerCommands, q queries.CustomerQueries) *CustomerHandler {
	return &CustomerHandler{cmds: cmds, q: q}
}

// @Summary Customer sign-up
// @Description Creates the customer and provisions a payment account at every hotel. Incomplete provisioning still returns 201 with the report.
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCustomerRequest true "Customer"
// @Success 201 {object} resdto.CreateCustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers [post]
func (h *CustomerHandler) Create(c *gin.Context) {
	var req reqdto.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.CreateCustomer(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/customers/"+result.CustomerID.String())
	c.JSON(http.StatusCreated, resdto.CreateCustomerResponse{
		CustomerID:   result.CustomerID,
		Provisioning: resdto.FromReport(result.CustomerID, result.Report),
	})
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Update customer
// @Description Omitted fields keep their current value. Document and username cannot change.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Param request body reqdto.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id} [put]
func (h *CustomerHandler) Update(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	existing, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	if err = h.cmds.UpdateCustomer(c.Request.Context(), id, req.ToCommand(existing), actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerView(view))
}

// @Summary Delete customer
// @Description Removes the customer's payment accounts, links and row in one unit
// @Tags customers
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.cmds.DeleteCustomer(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List hotel customers
// @Description Customers with at least one reservation at the hotel
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Success 200 {array} resdto.CustomerResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId}/customers [get]
func (h *CustomerHandler) ListForHotel(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return
	}

	views, err := h.q.ListForHotel(c.Request.Context(), hotelID, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}

// @Summary Search hotel customers
// @Description Prefix search on exactly one of name or surname
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param hotelId path string true "Hotel ID"
// @Param name query string false "Name prefix"
// @Param surname query string false "Surname prefix"
// @Success 200 {array} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /hotels/{hotelId}/customers/search [get]
func (h *CustomerHandler) Search(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	hotelID, ok := pathID(c, "hotelId")
	if !ok {
		return
	}
	var req reqdto.SearchCustomersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	views, err := h.q.SearchByName(c.Request.Context(), hotelID, req.Name, req.Surname, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCustomerViews(views))
}
