package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/SscSPs/ledgerflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fiscalPeriodHandler struct {
	fiscalPeriodService portssvc.FiscalPeriodSvcFacade
}

func registerFiscalPeriodRoutes(rg *gin.RouterGroup, svc portssvc.FiscalPeriodSvcFacade) {
	h := &fiscalPeriodHandler{fiscalPeriodService: svc}

	periods := rg.Group("/fiscal-periods")
	{
		periods.POST("", h.createFiscalPeriod)
		periods.GET("", h.listFiscalPeriods)
		periods.PATCH("/:fiscal_period_id/status", h.updateStatus)
	}
}

// createFiscalPeriod godoc
// @Summary Create a fiscal period
// @Tags fiscal-periods
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param period body dto.CreateFiscalPeriodRequest true "Period"
// @Success 201 {object} dto.FiscalPeriodResponse
// @Failure 409 {object} errorResponse "Overlaps an existing period"
// @Security BearerAuth
// @Router /organizations/{organization_id}/fiscal-periods [post]
func (h *fiscalPeriodHandler) createFiscalPeriod(c *gin.Context) {
	var req dto.CreateFiscalPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	period, err := h.fiscalPeriodService.CreateFiscalPeriod(c.Request.Context(), c.Param("organization_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "create fiscal period")
		return
	}
	c.JSON(http.StatusCreated, dto.ToFiscalPeriodResponse(period))
}

// listFiscalPeriods godoc
// @Summary List fiscal periods
// @Tags fiscal-periods
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} dto.FiscalPeriodResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/fiscal-periods [get]
func (h *fiscalPeriodHandler) listFiscalPeriods(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	periods, err := h.fiscalPeriodService.ListFiscalPeriods(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondWithError(c, err, "list fiscal periods")
		return
	}
	c.JSON(http.StatusOK, dto.ToListFiscalPeriodResponse(periods))
}

// updateStatus godoc
// @Summary Open, soft-close or close a fiscal period
// @Tags fiscal-periods
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param fiscal_period_id path string true "Fiscal period ID"
// @Param status body dto.UpdateFiscalPeriodStatusRequest true "New status"
// @Success 200 {object} dto.FiscalPeriodResponse
// @Failure 403 {object} errorResponse "Requires Admin"
// @Security BearerAuth
// @Router /organizations/{organization_id}/fiscal-periods/{fiscal_period_id}/status [patch]
func (h *fiscalPeriodHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateFiscalPeriodStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	periodID := c.Param("fiscal_period_id")

	period, err := h.fiscalPeriodService.UpdateFiscalPeriodStatus(c.Request.Context(), c.Param("organization_id"), periodID, req, userID)
	if err != nil {
		respondWithError(c, err, "update fiscal period status")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Fiscal period status changed",
		slog.String("fiscal_period_id", periodID), slog.String("status", req.Status), slog.String("user_id", userID))
	c.JSON(http.StatusOK, dto.ToFiscalPeriodResponse(period))
}
