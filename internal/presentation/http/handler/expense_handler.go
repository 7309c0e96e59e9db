package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// ExpenseHandler handles expense voucher HTTP requests
type ExpenseHandler struct {
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func expenseLines(lines []request.ExpenseLineRequest) []service.ExpenseLineInput {
	inputs := make([]service.ExpenseLineInput, len(lines))
	for i, line := range lines {
		inputs[i] = service.ExpenseLineInput{
			Description: line.Description,
			Amount:      line.Amount,
		}
	}
	return inputs
}

// Create handles creating an expense voucher
func (h *ExpenseHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateExpenseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.expenseService.CreateExpenseVoucher(c.Request.Context(), &service.CreateExpenseVoucherInput{
		UserID:       *userID,
		BranchID:     GetBranchIDFromContext(c),
		Date:         req.Date,
		PaidTo:       req.PaidTo,
		PaymentMode:  req.PaymentMode,
		AutoRoundOff: req.AutoRoundOff,
		AmountPaid:   req.AmountPaid,
		Note:         req.Note,
		Lines:        expenseLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Expense voucher created successfully", voucher)
}

// List handles listing expense vouchers
func (h *ExpenseHandler) List(c *gin.Context) {
	var req request.ExpenseFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	}
	params.Validate()

	input := &service.ListExpenseVouchersInput{
		Pagination: params,
		Search:     req.Search,
	}

	if req.Mode != "" {
		mode := enum.PaymentMode(req.Mode)
		input.Mode = &mode
	}

	if req.StartDate != "" {
		if startDate, err := time.Parse("2006-01-02", req.StartDate); err == nil {
			input.StartDate = &startDate
		}
	}

	if req.EndDate != "" {
		if endDate, err := time.Parse("2006-01-02", req.EndDate); err == nil {
			input.EndDate = &endDate
		}
	}

	result, err := h.expenseService.ListExpenseVouchers(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Expense vouchers retrieved successfully", result)
}

// Get handles getting a single expense voucher
func (h *ExpenseHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	voucher, err := h.expenseService.GetExpenseVoucher(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense voucher retrieved successfully", voucher)
}

// Update handles updating an expense voucher
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	var req request.UpdateExpenseVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	voucher, err := h.expenseService.UpdateExpenseVoucher(c.Request.Context(), &service.UpdateExpenseVoucherInput{
		ID:           id,
		UserID:       *userID,
		IsAdmin:      IsAdmin(c),
		BranchID:     GetBranchIDFromContext(c),
		Date:         req.Date,
		PaidTo:       req.PaidTo,
		PaymentMode:  req.PaymentMode,
		AutoRoundOff: req.AutoRoundOff,
		AmountPaid:   req.AmountPaid,
		Note:         req.Note,
		Lines:        expenseLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expense voucher updated successfully", voucher)
}

// Delete handles deleting an expense voucher
func (h *ExpenseHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid voucher ID")
		return
	}

	if err := h.expenseService.DeleteExpenseVoucher(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
