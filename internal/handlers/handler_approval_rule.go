package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/gin-gonic/gin"
)

type approvalRuleHandler struct {
	approvalRuleService portssvc.ApprovalRuleSvcFacade
}

func registerApprovalRuleRoutes(rg *gin.RouterGroup, svc portssvc.ApprovalRuleSvcFacade) {
	h := &approvalRuleHandler{approvalRuleService: svc}

	rules := rg.Group("/approval-rules")
	{
		rules.POST("", h.createApprovalRule)
		rules.GET("", h.listApprovalRules)
		rules.PATCH("/:rule_id/active", h.setActive)
	}
}

// createApprovalRule godoc
// @Summary Create an approval rule
// @Description Routes pending transactions of the given types and amount band to a required role.
// @Tags approval-rules
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param rule body dto.CreateApprovalRuleRequest true "Rule"
// @Success 201 {object} dto.ApprovalRuleResponse
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/approval-rules [post]
func (h *approvalRuleHandler) createApprovalRule(c *gin.Context) {
	var req dto.CreateApprovalRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rule, err := h.approvalRuleService.CreateApprovalRule(c.Request.Context(), c.Param("organization_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "create approval rule")
		return
	}
	c.JSON(http.StatusCreated, dto.ToApprovalRuleResponse(rule))
}

// listApprovalRules godoc
// @Summary List approval rules
// @Tags approval-rules
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} dto.ApprovalRuleResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/approval-rules [get]
func (h *approvalRuleHandler) listApprovalRules(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rules, err := h.approvalRuleService.ListApprovalRules(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondWithError(c, err, "list approval rules")
		return
	}
	c.JSON(http.StatusOK, dto.ToListApprovalRuleResponse(rules))
}

// setActive godoc
// @Summary Enable or disable an approval rule
// @Tags approval-rules
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param rule_id path string true "Rule ID"
// @Param body body dto.SetApprovalRuleActiveRequest true "Active flag"
// @Success 200 {object} dto.ApprovalRuleResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/approval-rules/{rule_id}/active [patch]
func (h *approvalRuleHandler) setActive(c *gin.Context) {
	var req dto.SetApprovalRuleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	rule, err := h.approvalRuleService.SetApprovalRuleActive(c.Request.Context(), c.Param("organization_id"), c.Param("rule_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "update approval rule")
		return
	}
	c.JSON(http.StatusOK, dto.ToApprovalRuleResponse(rule))
}
