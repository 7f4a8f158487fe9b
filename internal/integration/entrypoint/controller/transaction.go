// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/usecase/report"
	"github.com/fintrack/backend/internal/application/usecase/transaction"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/entrypoint/dto"
)

const dateLayout = "2006-01-02"

// TransactionController handles transaction and report endpoints.
type TransactionController struct {
	createUseCase         *transaction.CreateTransactionUseCase
	getUseCase            *transaction.GetTransactionUseCase
	listByUserUseCase     *transaction.ListByUserUseCase
	listByCategoryUseCase *transaction.ListByCategoryUseCase
	updateUseCase         *transaction.UpdateTransactionUseCase
	deleteUseCase         *transaction.DeleteTransactionUseCase
	reportUseCase         *report.GenerateReportUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	getUseCase *transaction.GetTransactionUseCase,
	listByUserUseCase *transaction.ListByUserUseCase,
	listByCategoryUseCase *transaction.ListByCategoryUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	reportUseCase *report.GenerateReportUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listByUserUseCase:     listByUserUseCase,
		listByCategoryUseCase: listByCategoryUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		reportUseCase:         reportUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	trxDate, err := time.Parse(dateLayout, req.TrxDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid trx_date format, expected YYYY-MM-DD",
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:     userID,
		CategoryID: categoryID,
		Amount:     decimal.NewFromFloat(req.Amount),
		TrxDate:    trxDate,
	}
	if req.Description != nil {
		input.Description = *req.Description
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// GetByID handles GET /transactions/:id requests.
func (c *TransactionController) GetByID(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), transaction.GetTransactionInput{
		TransactionID: transactionID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Exactly one of userId or
// categoryId must be supplied as a query parameter.
func (c *TransactionController) List(ctx *gin.Context) {
	userIDStr := ctx.Query("userId")
	categoryIDStr := ctx.Query("categoryId")

	if (userIDStr == "") == (categoryIDStr == "") {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Exactly one of userId or categoryId must be provided",
		})
		return
	}

	if userIDStr != "" {
		userID, err := uuid.Parse(userIDStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid user ID format",
			})
			return
		}

		output, err := c.listByUserUseCase.Execute(ctx.Request.Context(), transaction.ListByUserInput{
			UserID: userID,
		})
		if err != nil {
			c.handleTransactionError(ctx, err)
			return
		}

		ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
		return
	}

	categoryID, err := uuid.Parse(categoryIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}

	output, err := c.listByCategoryUseCase.Execute(ctx.Request.Context(), transaction.ListByCategoryInput{
		CategoryID: categoryID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		Description:   req.Description,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
	}); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Report handles GET /transactions/report requests.
func (c *TransactionController) Report(ctx *gin.Context) {
	userIDStr := ctx.Query("userId")
	startDateStr := ctx.Query("startDate")
	endDateStr := ctx.Query("endDate")

	if userIDStr == "" || startDateStr == "" || endDateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Missing required parameters: userId, startDate, endDate",
		})
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user ID format",
		})
		return
	}

	startDate, err := time.Parse(dateLayout, startDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid startDate format, expected YYYY-MM-DD",
		})
		return
	}

	endDate, err := time.Parse(dateLayout, endDateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid endDate format, expected YYYY-MM-DD",
		})
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context(), report.GenerateReportInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeTxnUserNotFound,
		domainerror.ErrCodeTxnCategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTxnCategoryNotOwned,
		domainerror.ErrCodeNonPositiveAmount,
		domainerror.ErrCodeEmptyUpdate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func (c *TransactionController) handleReportError(ctx *gin.Context, err error) {
	var rptErr *domainerror.ReportError
	if errors.As(err, &rptErr) {
		ctx.JSON(c.getStatusCodeForReportError(rptErr.Code), dto.ErrorResponse{
			Error: rptErr.Message,
			Code:  string(rptErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForReportError maps report error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeReportUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
