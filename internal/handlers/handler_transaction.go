package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/SscSPs/ledgerflow/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests for transactions and their workflow.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers transaction routes under an organization group.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	txs := rg.Group("/transactions")
	{
		txs.POST("", h.createTransaction)
		txs.GET("", h.listTransactions)
		txs.GET("/:transaction_id", h.getTransaction)
		txs.PUT("/:transaction_id/entries", h.replaceEntries)
		txs.GET("/:transaction_id/audit", h.getAuditTrail)

		txs.POST("/:transaction_id/submit", h.submit)
		txs.POST("/:transaction_id/approve", h.approve)
		txs.POST("/:transaction_id/reject", h.reject)
		txs.POST("/:transaction_id/post", h.post)
		txs.POST("/:transaction_id/void", h.void)
	}
}

// createTransaction godoc
// @Summary Record a draft transaction
// @Description Resolves currencies, applies splits and validates the balance before storing the draft.
// @Tags transactions
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} errorResponse
// @Failure 403 {object} errorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	orgID := c.Param("organization_id")

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	tx, err := h.transactionService.CreateTransaction(c.Request.Context(), orgID, req, userID)
	if err != nil {
		respondWithError(c, err, "create transaction")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Transaction created",
		slog.String("transaction_id", tx.TransactionID), slog.Int("entries", len(tx.Entries)))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(tx))
}

// listTransactions godoc
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param status query string false "Status filter"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "query parameters")
		return
	}

	resp, err := h.transactionService.ListTransactions(c.Request.Context(), c.Param("organization_id"), userID, params)
	if err != nil {
		respondWithError(c, err, "list transactions")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a transaction with its entries
// @Tags transactions
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} errorResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactionService.GetTransaction(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondWithError(c, err, "get transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// replaceEntries godoc
// @Summary Replace the entries of a draft or pending transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Param entries body dto.ReplaceEntriesRequest true "New entries"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} errorResponse "Transaction is no longer editable"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/entries [put]
func (h *transactionHandler) replaceEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ReplaceEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	tx, err := h.transactionService.ReplaceEntries(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "replace entries")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// getAuditTrail godoc
// @Summary Workflow history of a transaction
// @Tags transactions
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {array} dto.AuditRecordResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/audit [get]
func (h *transactionHandler) getAuditTrail(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	records, err := h.transactionService.GetAuditTrail(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondWithError(c, err, "get audit trail")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditRecordResponses(records))
}

// submit godoc
// @Summary Submit a draft for approval
// @Tags workflow
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 409 {object} errorResponse "Invalid transition"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/submit [post]
func (h *transactionHandler) submit(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactionService.Submit(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondWithError(c, err, "submit transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// approve godoc
// @Summary Approve a pending transaction
// @Tags workflow
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Param body body dto.ApproveTransactionRequest false "Approval notes"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} errorResponse "Role or approval limit insufficient"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/approve [post]
func (h *transactionHandler) approve(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.ApproveTransactionRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err, "request format")
			return
		}
	}

	tx, err := h.transactionService.Approve(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "approve transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// reject godoc
// @Summary Reject a pending transaction back to draft
// @Tags workflow
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Param body body dto.RejectTransactionRequest true "Rejection reason"
// @Success 200 {object} dto.TransactionResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/reject [post]
func (h *transactionHandler) reject(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.RejectTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	tx, err := h.transactionService.Reject(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "reject transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// post godoc
// @Summary Post an approved transaction to the ledger
// @Tags workflow
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} errorResponse "Fiscal period closed"
// @Failure 409 {object} errorResponse "Concurrent modification; retryable"
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/post [post]
func (h *transactionHandler) post(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	tx, err := h.transactionService.Post(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), userID)
	if err != nil {
		respondWithError(c, err, "post transaction")
		return
	}
	c.JSON(http.StatusOK, dto.ToTransactionResponse(tx))
}

// void godoc
// @Summary Void a posted transaction
// @Description Creates and posts a linked reversing transaction.
// @Tags workflow
// @Accept json
// @Produce json
// @Param organization_id path string true "Organization ID"
// @Param transaction_id path string true "Transaction ID"
// @Param body body dto.VoidTransactionRequest true "Void reason and optional target period"
// @Success 200 {object} dto.VoidTransactionResponse
// @Security BearerAuth
// @Router /organizations/{organization_id}/transactions/{transaction_id}/void [post]
func (h *transactionHandler) void(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.VoidTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "request format")
		return
	}

	original, reversing, err := h.transactionService.Void(c.Request.Context(), c.Param("organization_id"), c.Param("transaction_id"), req, userID)
	if err != nil {
		respondWithError(c, err, "void transaction")
		return
	}
	c.JSON(http.StatusOK, dto.VoidTransactionResponse{
		Original:  dto.ToTransactionResponse(original),
		Reversing: dto.ToTransactionResponse(reversing),
	})
}
