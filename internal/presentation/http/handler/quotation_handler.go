package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/domain/enum"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// QuotationHandler handles quotation HTTP requests
type QuotationHandler struct {
	quotationService *service.QuotationService
}

// NewQuotationHandler creates a new quotation handler
func NewQuotationHandler(quotationService *service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Create handles creating a quotation
func (h *QuotationHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.CreateQuotation(c.Request.Context(), &service.CreateQuotationInput{
		UserID:            *userID,
		BranchID:          GetBranchIDFromContext(c),
		CustomerID:        req.CustomerID,
		Date:              req.Date,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		Status:            req.Status,
		Note:              req.Note,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation created successfully", quotation)
}

// List handles listing quotations
func (h *QuotationHandler) List(c *gin.Context) {
	var req request.QuotationFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	}
	params.Validate()

	input := &service.ListQuotationsInput{
		Pagination: params,
		Search:     req.Search,
	}

	if req.Status != "" {
		if statusInt, err := strconv.Atoi(req.Status); err == nil {
			status := enum.QuotationStatus(statusInt)
			input.Status = &status
		}
	}

	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			input.CustomerID = &customerID
		}
	}

	result, err := h.quotationService.ListQuotations(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotations retrieved successfully", result)
}

// Get handles getting a single quotation
func (h *QuotationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	quotation, err := h.quotationService.GetQuotation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation retrieved successfully", quotation)
}

// Update handles updating a quotation
func (h *QuotationHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quotation, err := h.quotationService.UpdateQuotation(c.Request.Context(), &service.UpdateQuotationInput{
		ID:                id,
		UserID:            *userID,
		IsAdmin:           IsAdmin(c),
		BranchID:          GetBranchIDFromContext(c),
		CustomerID:        req.CustomerID,
		Date:              req.Date,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		Status:            req.Status,
		Note:              req.Note,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation updated successfully", quotation)
}

// UpdateStatus handles changing a quotation's status
func (h *QuotationHandler) UpdateStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	var req request.UpdateQuotationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if err := h.quotationService.UpdateQuotationStatus(c.Request.Context(), *userID, id, req.Status, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quotation status updated successfully", nil)
}

// Delete handles deleting a quotation
func (h *QuotationHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	if err := h.quotationService.DeleteQuotation(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
