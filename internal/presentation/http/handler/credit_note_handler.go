package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kiranps/tradebooks-api/internal/application/service"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/request"
	"github.com/kiranps/tradebooks-api/internal/presentation/http/dto/response"
	"github.com/kiranps/tradebooks-api/pkg/pagination"
)

// CreditNoteHandler handles credit note HTTP requests
type CreditNoteHandler struct {
	creditNoteService *service.CreditNoteService
}

// NewCreditNoteHandler creates a new credit note handler
func NewCreditNoteHandler(creditNoteService *service.CreditNoteService) *CreditNoteHandler {
	return &CreditNoteHandler{creditNoteService: creditNoteService}
}

// Create handles creating a credit note
func (h *CreditNoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.creditNoteService.CreateCreditNote(c.Request.Context(), &service.CreateCreditNoteInput{
		UserID:            *userID,
		BranchID:          GetBranchIDFromContext(c),
		CustomerID:        req.CustomerID,
		Date:              req.Date,
		Reason:            req.Reason,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Credit note created successfully", note)
}

// List handles listing credit notes
func (h *CreditNoteHandler) List(c *gin.Context) {
	var req request.CreditNoteFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &pagination.PaginationParams{
		Page:    req.Page,
		PerPage: req.PerPage,
	}
	params.Validate()

	input := &service.ListCreditNotesInput{
		Pagination: params,
		Search:     req.Search,
	}

	if req.CustomerID != "" {
		if customerID, err := uuid.Parse(req.CustomerID); err == nil {
			input.CustomerID = &customerID
		}
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

	result, err := h.creditNoteService.ListCreditNotes(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Credit notes retrieved successfully", result)
}

// Get handles getting a single credit note
func (h *CreditNoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid credit note ID")
		return
	}

	note, err := h.creditNoteService.GetCreditNote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit note retrieved successfully", note)
}

// Update handles updating a credit note
func (h *CreditNoteHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid credit note ID")
		return
	}

	var req request.UpdateCreditNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	note, err := h.creditNoteService.UpdateCreditNote(c.Request.Context(), &service.UpdateCreditNoteInput{
		ID:                id,
		UserID:            *userID,
		IsAdmin:           IsAdmin(c),
		BranchID:          GetBranchIDFromContext(c),
		CustomerID:        req.CustomerID,
		Date:              req.Date,
		Reason:            req.Reason,
		AdditionalCharges: req.AdditionalCharges,
		OverallDiscount:   req.OverallDiscount,
		DiscountType:      req.DiscountType,
		AutoRoundOff:      req.AutoRoundOff,
		Lines:             documentLines(req.Lines),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Credit note updated successfully", note)
}

// Delete handles deleting a credit note
func (h *CreditNoteHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid credit note ID")
		return
	}

	if err := h.creditNoteService.DeleteCreditNote(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
