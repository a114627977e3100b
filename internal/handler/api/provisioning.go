package api

import (
	"net/http"

	resdto "hotel-backend/internal/handler/dto/response"
	"hotel-backend/internal/usecase/commands"
	"hotel-backend/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ProvisioningHandler struct {
	cmds commands.ProvisioningCommands
	q    queries.ProvisioningQueries
}

func NewProvisioningHandler(cmds commands.ProvisioningCommands, q queries.ProvisioningQueries) *ProvisioningHandler {
	return &ProvisioningHandler{cmds: cmds, q: q}
}

// @Summary Provisioning status
// @Description Per-hotel payment account state of a customer
// @Tags provisioning
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.ProvisioningStatusResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /customers/{id}/provisioning [get]
func (h *ProvisioningHandler) Status(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	view, err := h.q.GetStatus(c.Request.Context(), id, actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProvisioningStatusView(view))
}

// @Summary Resume provisioning
// @Description Retries the customer's outstanding provisioning intents now
// @Tags provisioning
// @Produce json
// @Security BearerAuth
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.ProvisioningReportResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /customers/{id}/provisioning/resume [post]
func (h *ProvisioningHandler) Resume(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	report, err := h.cmds.ResumeProvisioning(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReport(id, report))
}
