package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/SscSPs/ledgerflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

type organizationHandler struct {
	organizationService portssvc.OrganizationSvcFacade
}

func newOrganizationHandler(os portssvc.OrganizationSvcFacade) *organizationHandler {
	return &organizationHandler{organizationService: os}
}

// registerOrganizationRoutes registers the organization routes and nests every
// organization-scoped resource under /organizations/:organization_id.
func registerOrganizationRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newOrganizationHandler(services.Organization)

	orgs := rg.Group("/organizations")
	{
		orgs.POST("", h.createOrganization)
		orgs.GET("", h.listUserOrganizations)
	}

	org := orgs.Group("/:organization_id")
	{
		org.GET("", h.getOrganization)
		org.GET("/members", h.listMembers)
		org.POST("/members", h.addMember)

		registerAccountRoutes(org, services.Account)
		registerFiscalPeriodRoutes(org, services.FiscalPeriod)
		registerApprovalRuleRoutes(org, services.ApprovalRule)
		registerTransactionRoutes(org, services.Transaction)
	}
}

// createOrganization godoc
// @Summary Create an organization
// @Description Creates an organization; the caller becomes its Owner.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body dto.CreateOrganizationRequest true "Organization details"
// @Success 201 {object} dto.OrganizationResponse
// @Failure 400 {object} errorResponse
// @Security BearerAuth
// @Router /organizations [post]
func (h *organizationHandler) createOrganization(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	org, err := h.organizationService.CreateOrganization(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, err, "create organization")
		return
	}

	logger.Info("Organization created", slog.String("organization_id", org.OrganizationID), slog.String("owner", userID))
	c.JSON(http.StatusCreated, dto.ToOrganizationResponse(org))
}

// listUserOrganizations godoc
// @Summary List the caller's organizations
// @Tags organizations
// @Produce json
// @Success 200 {array} dto.OrganizationResponse
// @Security BearerAuth
// @Router /organizations [get]
func (h *organizationHandler) listUserOrganizations(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	orgs, err := h.organizationService.ListUserOrganizations(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "list organizations")
		return
	}

	resp := make([]dto.OrganizationResponse, len(orgs))
	for i := range orgs {
		resp[i] = dto.ToOrganizationResponse(&orgs[i])
	}
	c.JSON(http.StatusOK, resp)
}

// getOrganization godoc
// @Summary Get an organization
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {object} dto.OrganizationResponse
// @Failure 403 {object} errorResponse "Not a member"
// @Security BearerAuth
// @Router /organizations/{organization_id} [get]
func (h *organizationHandler) getOrganization(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	org, err := h.organizationService.GetOrganization(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondWithError(c, err, "get organization")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrganizationResponse(org))
}

// listMembers godoc
// @Summary List organization members
// @Tags organizations
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Success 200 {array} dto.MembershipResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/members [get]
func (h *organizationHandler) listMembers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	members, err := h.organizationService.ListMembers(c.Request.Context(), c.Param("organization_id"), userID)
	if err != nil {
		respondWithError(c, err, "list members")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMembershipResponse(members))
}

// addMember godoc
// @Summary Add or update a member
// @Description Grants a role and optional approval limit. Requires Admin or higher.
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param member body dto.AddMemberRequest true "Membership"
// @Success 200 {object} dto.MembershipResponse
// @Failure 403 {object} errorResponse "Insufficient role"
// @Security BearerAuth
// @Router /organizations/{organization_id}/members [post]
func (h *organizationHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	membership, err := h.organizationService.AddMember(c.Request.Context(), c.Param("organization_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "add member")
		return
	}

	logger.Info("Member added", slog.String("member_id", req.UserID), slog.String("role", req.Role), slog.String("granted_by", userID))
	c.JSON(http.StatusOK, dto.ToMembershipResponse(membership))
}
